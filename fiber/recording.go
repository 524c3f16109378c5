// Package fiber provides the two-channel fiber photometry recording model:
// ordered recording segments with isosbestic control channels, timestamp
// lookup across segments, and signal normalization (raw, delta-F/F,
// whole-recording z-scores).
package fiber

import "fmt"

// Recording holds one continuous two-channel recording segment. Time is
// in seconds and strictly increasing; Signal is the calcium-dependent
// channel and Control the isosbestic reference, sampled on the same axis.
type Recording struct {
	Time    []float64
	Signal  []float64
	Control []float64
}

// NewRecording validates and wraps the three channels. The slices are
// retained, not copied.
func NewRecording(time, signal, control []float64) (*Recording, error) {
	if len(time) == 0 {
		return nil, errEmptyRecording
	}

	if len(signal) != len(time) || len(control) != len(time) {
		return nil, fmt.Errorf("%w: time=%d signal=%d control=%d",
			errLengthMismatch, len(time), len(signal), len(control))
	}

	for i := 1; i < len(time); i++ {
		if time[i] <= time[i-1] {
			return nil, fmt.Errorf("%w: t[%d]=%g >= t[%d]=%g",
				errNonIncreasingTime, i-1, time[i-1], i, time[i])
		}
	}

	return &Recording{Time: time, Signal: signal, Control: control}, nil
}

// Len returns the number of samples in the recording.
func (r *Recording) Len() int { return len(r.Time) }

// Span returns the first and last timestamps of the recording.
func (r *Recording) Span() (start, end float64) {
	return r.Time[0], r.Time[len(r.Time)-1]
}

// Contains reports whether t falls within the recording's time span,
// boundaries included.
func (r *Recording) Contains(t float64) bool {
	start, end := r.Span()
	return t >= start && t <= end
}
