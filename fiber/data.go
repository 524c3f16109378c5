package fiber

import "fmt"

// Data holds the ordered set of recording segments from one session.
// Segments are indexed from zero in the order supplied.
type Data struct {
	recordings []*Recording
}

// NewData wraps a set of recording segments.
func NewData(recordings ...*Recording) *Data {
	return &Data{recordings: recordings}
}

// Len returns the number of recording segments.
func (d *Data) Len() int { return len(d.recordings) }

// Recording returns the segment at the given index.
func (d *Data) Recording(rec int) (*Recording, error) {
	if rec < 0 || rec >= len(d.recordings) {
		return nil, fmt.Errorf("fiber: recording index %d out of range [0,%d)", rec, len(d.recordings))
	}

	return d.recordings[rec], nil
}

// FindRecording returns the index of the segment whose time span contains
// the timestamp. It fails with [ErrRecordingNotFound] when no segment
// spans the timestamp; it never falls back to a default index.
func (d *Data) FindRecording(t float64) (int, error) {
	for i, r := range d.recordings {
		if r.Contains(t) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: t=%g", ErrRecordingNotFound, t)
}
