package perievent

import (
	"fmt"

	"github.com/cwbudde/algo-photometry/fiber"
	"github.com/cwbudde/algo-photometry/integrate"
	"github.com/cwbudde/algo-photometry/stats/baseline"
)

// AnalyzeOption overrides session defaults for a single Analyze call.
type AnalyzeOption func(*analyzeConfig)

type analyzeConfig struct {
	window    Window
	hasWindow bool
	norm      fiber.Method
	hasNorm   bool
}

// WithWindow overrides the session's default window for one call.
func WithWindow(w Window) AnalyzeOption {
	return func(c *analyzeConfig) {
		c.window = w
		c.hasWindow = true
	}
}

// WithNorm overrides the session's default display normalization for one
// call.
func WithNorm(m fiber.Method) AnalyzeOption {
	return func(c *analyzeConfig) {
		c.norm = m
		c.hasNorm = true
	}
}

// Analyze extracts the perievent window around the event timestamp and
// derives every representation and summary statistic. It fails with
// fiber.ErrRecordingNotFound when no recording spans the timestamp, with
// fiber.ErrInvalidNormalization for an unrecognized selector, and with
// integrate.ErrInsufficientSamples when a segment is too short for the
// Simpson rule. On success the result is inserted into the session
// cache; a failed call inserts nothing.
func (s *Session) Analyze(eventTime float64, opts ...AnalyzeOption) (*Result, error) {
	cfg := analyzeConfig{window: s.window, norm: s.norm}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.window.Validate(); err != nil {
		return nil, err
	}

	switch cfg.norm {
	case fiber.MethodRaw, fiber.MethodDeltaFF, fiber.MethodZScore:
	default:
		return nil, fmt.Errorf("%w: %v", fiber.ErrInvalidNormalization, cfg.norm)
	}

	rec, err := s.fiberData.FindRecording(eventTime)
	if err != nil {
		return nil, err
	}

	raw, err := s.fiberData.Normalize(rec, fiber.MethodRaw)
	if err != nil {
		return nil, err
	}

	dff, err := s.fiberData.Normalize(rec, fiber.MethodDeltaFF)
	if err != nil {
		return nil, err
	}

	var display *fiber.Trace
	switch cfg.norm {
	case fiber.MethodRaw:
		display = raw
	case fiber.MethodDeltaFF:
		display = dff
	default:
		display, err = s.fiberData.Normalize(rec, cfg.norm)
		if err != nil {
			return nil, err
		}
	}

	startIdx, eventIdx, endIdx := windowIndices(raw.Time, eventTime, cfg.window)
	offset := eventIdx - startIdx

	timeWin := raw.Time[startIdx : endIdx+1]
	rawWin := raw.Signal[startIdx : endIdx+1]
	ctrlWin := raw.Control[startIdx : endIdx+1]
	dffWin := dff.Signal[startIdx : endIdx+1]
	displayWin := display.Signal[startIdx : endIdx+1]

	// Baseline statistics come from the pre-event segment only and are
	// applied across the whole window.
	zWin := baseline.ZScores(dffWin, dffWin[:offset])
	rzWin := baseline.RobustZScores(dffWin, dffWin[:offset])

	res := &Result{
		Rec:       rec,
		EventTime: eventTime,
		Window:    cfg.window,
		Norm:      cfg.norm,

		SamplingRate: samplingRate(timeWin),

		Time:     timeWin,
		PreTime:  timeWin[:offset],
		PostTime: timeWin[offset:],

		Signal: displayWin,

		RawSignal:     rawWin,
		PreRawSignal:  rawWin[:offset],
		PostRawSignal: rawWin[offset:],

		RawControl:     ctrlWin,
		PostRawControl: ctrlWin[offset:],

		DFF:     dffWin,
		PreDFF:  dffWin[:offset],
		PostDFF: dffWin[offset:],

		ZScores:     zWin,
		PreZScores:  zWin[:offset],
		PostZScores: zWin[offset:],

		RobustZScores:     rzWin,
		PreRobustZScores:  rzWin[:offset],
		PostRobustZScores: rzWin[offset:],
	}

	res.Stats.Raw, err = seriesStats(res.PreRawSignal, res.PostRawSignal, res.PreTime, res.PostTime)
	if err != nil {
		return nil, err
	}

	res.Stats.DFF, err = seriesStats(res.PreDFF, res.PostDFF, res.PreTime, res.PostTime)
	if err != nil {
		return nil, err
	}

	res.Stats.ZScore, err = seriesStats(res.PreZScores, res.PostZScores, res.PreTime, res.PostTime)
	if err != nil {
		return nil, err
	}

	res.Stats.RobustZ, err = seriesStats(res.PreRobustZScores, res.PostRobustZScores, res.PreTime, res.PostTime)
	if err != nil {
		return nil, err
	}

	s.cache.Put(res)

	return res, nil
}

// seriesStats computes the per-segment mean and Simpson AUC of one
// representation.
func seriesStats(pre, post, preTime, postTime []float64) (SeriesStats, error) {
	preAUC, err := integrate.Simpson(pre, preTime)
	if err != nil {
		return SeriesStats{}, fmt.Errorf("pre-event segment: %w", err)
	}

	postAUC, err := integrate.Simpson(post, postTime)
	if err != nil {
		return SeriesStats{}, fmt.Errorf("post-event segment: %w", err)
	}

	return SeriesStats{
		Pre:  SegmentStats{Mean: baseline.Mean(pre), AUC: preAUC},
		Post: SegmentStats{Mean: baseline.Mean(post), AUC: postAUC},
	}, nil
}

// samplingRate returns the reciprocal of the mean time delta.
func samplingRate(timeAxis []float64) float64 {
	n := len(timeAxis)
	if n < 2 {
		return 0
	}

	return float64(n-1) / (timeAxis[n-1] - timeAxis[0])
}
