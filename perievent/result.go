package perievent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-photometry/fiber"
	"github.com/cwbudde/algo-photometry/smooth"
)

// SegmentStats holds the scalar summaries of one representation over one
// segment.
type SegmentStats struct {
	Mean float64
	AUC  float64 // composite Simpson integral over the segment's time axis
}

// SeriesStats holds the pre- and post-event summaries of one
// representation.
type SeriesStats struct {
	Pre  SegmentStats
	Post SegmentStats
}

// Stats holds the scalar summaries of every representation.
type Stats struct {
	Raw     SeriesStats
	DFF     SeriesStats
	ZScore  SeriesStats
	RobustZ SeriesStats
}

// Result is the immutable outcome of one perievent extraction. All
// fields are populated on every successful extraction; the post-event
// segment includes the event sample itself.
type Result struct {
	Rec       int          // recording segment index
	EventTime float64      // seconds
	Window    Window       // window used for this extraction
	Norm      fiber.Method // display normalization selector

	// SamplingRate is the reciprocal of the mean time delta within the
	// sliced window, recomputed per extraction.
	SamplingRate float64

	Time     []float64
	PreTime  []float64
	PostTime []float64

	// Signal is the window sliced from the selector-normalized trace.
	Signal []float64

	RawSignal     []float64
	PreRawSignal  []float64
	PostRawSignal []float64

	RawControl     []float64
	PostRawControl []float64

	DFF     []float64
	PreDFF  []float64
	PostDFF []float64

	ZScores     []float64
	PreZScores  []float64
	PostZScores []float64

	RobustZScores     []float64
	PreRobustZScores  []float64
	PostRobustZScores []float64

	Stats Stats
}

// Series returns a named derived series. It fails with
// [ErrUnknownSeries] for names not present on the result; use
// [Result.SeriesNames] to enumerate valid names.
func (r *Result) Series(name string) ([]float64, error) {
	s, ok := r.seriesMap()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}

	return s, nil
}

// SeriesNames returns the sorted names accepted by [Result.Series].
func (r *Result) SeriesNames() []string {
	m := r.seriesMap()

	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func (r *Result) seriesMap() map[string][]float64 {
	return map[string][]float64{
		"time":            r.Time,
		"pre_time":        r.PreTime,
		"post_time":       r.PostTime,
		"signal":          r.Signal,
		"raw_signal":      r.RawSignal,
		"pre_raw_signal":  r.PreRawSignal,
		"post_raw_signal": r.PostRawSignal,
		"raw_control":     r.RawControl,
		"dff":             r.DFF,
		"pre_dff":         r.PreDFF,
		"post_dff":        r.PostDFF,
		"zscores":         r.ZScores,
		"pre_zscores":     r.PreZScores,
		"post_zscores":    r.PostZScores,
		"robust_zscores":  r.RobustZScores,
		"pre_rzscores":    r.PreRobustZScores,
		"post_rzscores":   r.PostRobustZScores,
	}
}

// Smooth smooths a named series against its matching time axis: series
// named "pre_*" use the pre-segment axis, "post_*" the post-segment
// axis, everything else the full window. Without an explicit window
// option the smoothing window defaults to roughly 250 ms at the
// result's sampling rate.
func (r *Result) Smooth(name string, method smooth.Method, opts ...smooth.Option) (t, y []float64, err error) {
	data, err := r.Series(name)
	if err != nil {
		return nil, nil, err
	}

	axis := r.Time
	switch {
	case strings.HasPrefix(name, "pre_"):
		axis = r.PreTime
	case strings.HasPrefix(name, "post_"):
		axis = r.PostTime
	}

	return smooth.Smooth(axis, data, method, opts...)
}
