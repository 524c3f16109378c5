// Package behavior provides the behavioral-event side of a session:
// labeled event timestamps and labeled intervals, with filtering down to
// those that fall inside a fiber recording span.
package behavior

import (
	"sort"

	"github.com/cwbudde/algo-photometry/fiber"
)

// Interval is one labeled behavioral interval.
type Interval struct {
	Start float64
	End   float64
}

// Set holds the behavioral events and intervals of one session, keyed by
// type label.
type Set struct {
	events    map[string][]float64
	intervals map[string][]Interval
}

// NewSet creates an empty behavioral set.
func NewSet() *Set {
	return &Set{
		events:    make(map[string][]float64),
		intervals: make(map[string][]Interval),
	}
}

// AddEvents appends timestamps for the given event label, keeping the
// label's timestamps sorted.
func (s *Set) AddEvents(label string, timestamps ...float64) {
	s.events[label] = append(s.events[label], timestamps...)
	sort.Float64s(s.events[label])
}

// AddIntervals appends intervals for the given label, keeping the
// label's intervals sorted by start time.
func (s *Set) AddIntervals(label string, intervals ...Interval) {
	s.intervals[label] = append(s.intervals[label], intervals...)
	sort.Slice(s.intervals[label], func(i, j int) bool {
		return s.intervals[label][i].Start < s.intervals[label][j].Start
	})
}

// Labels returns the sorted event labels.
func (s *Set) Labels() []string {
	labels := make([]string, 0, len(s.events))
	for l := range s.events {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return labels
}

// Events returns the timestamps for one event label.
func (s *Set) Events(label string) []float64 {
	return s.events[label]
}

// Intervals returns the intervals for one label.
func (s *Set) Intervals(label string) []Interval {
	return s.intervals[label]
}

// RecordedEvents returns, per label, the event timestamps whose full
// perievent window [t-pre, t+post] fits inside a single recording
// segment. Labels with no analyzable events are omitted.
func (s *Set) RecordedEvents(data *fiber.Data, pre, post float64) map[string][]float64 {
	out := make(map[string][]float64)

	for label, times := range s.events {
		var kept []float64

		for _, t := range times {
			rec, err := data.FindRecording(t)
			if err != nil {
				continue
			}

			r, err := data.Recording(rec)
			if err != nil {
				continue
			}

			if r.Contains(t-pre) && r.Contains(t+post) {
				kept = append(kept, t)
			}
		}

		if len(kept) > 0 {
			out[label] = kept
		}
	}

	return out
}

// RecordedIntervals returns, per label, the intervals fully contained in
// a single recording segment. Labels with no recorded intervals are
// omitted.
func (s *Set) RecordedIntervals(data *fiber.Data) map[string][]Interval {
	out := make(map[string][]Interval)

	for label, ivs := range s.intervals {
		var kept []Interval

		for _, iv := range ivs {
			rec, err := data.FindRecording(iv.Start)
			if err != nil {
				continue
			}

			r, err := data.Recording(rec)
			if err != nil {
				continue
			}

			if r.Contains(iv.End) {
				kept = append(kept, iv)
			}
		}

		if len(kept) > 0 {
			out[label] = kept
		}
	}

	return out
}
