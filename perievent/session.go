package perievent

import (
	"github.com/cwbudde/algo-photometry/behavior"
	"github.com/cwbudde/algo-photometry/fiber"
)

// Session pairs the fiber recordings and behavioral events of one
// subject's session and owns the analysis cache. The default window and
// normalization apply to every Analyze call unless overridden per call.
type Session struct {
	fiberData *fiber.Data
	events    *behavior.Set
	window    Window
	norm      fiber.Method
	cache     *Cache
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDefaultWindow sets the session's default perievent window.
func WithDefaultWindow(w Window) SessionOption {
	return func(s *Session) {
		if w.Validate() == nil {
			s.window = w
		}
	}
}

// WithDefaultNorm sets the session's default display normalization.
func WithDefaultNorm(m fiber.Method) SessionOption {
	return func(s *Session) {
		s.norm = m
	}
}

// NewSession creates a session over the given fiber data and behavioral
// set. The default window is (10s, 10s) and the default normalization is
// delta-F/F.
func NewSession(fiberData *fiber.Data, events *behavior.Set, opts ...SessionOption) *Session {
	s := &Session{
		fiberData: fiberData,
		events:    events,
		window:    Window{Pre: 10, Post: 10},
		norm:      fiber.MethodDeltaFF,
		cache:     NewCache(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// DefaultWindow returns the session's default perievent window.
func (s *Session) DefaultWindow() Window { return s.window }

// SetDefaultWindow replaces the session's default perievent window.
// Previously cached analyses keep the window they were computed with.
func (s *Session) SetDefaultWindow(w Window) error {
	if err := w.Validate(); err != nil {
		return err
	}

	s.window = w

	return nil
}

// Cache returns the session's analysis cache.
func (s *Session) Cache() *Cache { return s.cache }

// AnalyzableEvents returns, per label, the event timestamps whose full
// default window fits inside a single recording segment.
func (s *Session) AnalyzableEvents() map[string][]float64 {
	if s.events == nil {
		return nil
	}

	return s.events.RecordedEvents(s.fiberData, s.window.Pre, s.window.Post)
}

// RecordedIntervals returns, per label, the behavioral intervals fully
// contained in a single recording segment.
func (s *Session) RecordedIntervals() map[string][]behavior.Interval {
	if s.events == nil {
		return nil
	}

	return s.events.RecordedIntervals(s.fiberData)
}
