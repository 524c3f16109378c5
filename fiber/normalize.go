package fiber

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-photometry/stats/baseline"
)

// Method identifies a normalization method.
type Method int

const (
	// MethodRaw passes both channels through unchanged.
	MethodRaw Method = iota
	// MethodDeltaFF expresses the signal as fractional change relative
	// to the fitted control baseline: (signal - fit) / fit.
	MethodDeltaFF
	// MethodZScore z-scores the delta-F/F trace over the whole
	// recording. This is a display normalization; perievent analysis
	// additionally computes pre-event-baseline z-scores regardless of
	// the selector.
	MethodZScore
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodRaw:
		return "raw"
	case MethodDeltaFF:
		return "delta F/F"
	case MethodZScore:
		return "z-score"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps the historical selector strings {"raw", "F", "Z"} to
// a [Method]. It fails with [ErrInvalidNormalization] for anything else.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "raw":
		return MethodRaw, nil
	case "F":
		return MethodDeltaFF, nil
	case "Z":
		return MethodZScore, nil
	default:
		return 0, fmt.Errorf("%w: %q (want raw, F, or Z)", ErrInvalidNormalization, s)
	}
}

// Trace holds one normalized view of a recording segment. Time is shared
// sample-for-sample with the source recording. For MethodRaw, Signal and
// Control are copies of the raw channels; for the other methods, Signal
// is the normalized trace and Control carries the fitted baseline.
type Trace struct {
	Time    []float64
	Signal  []float64
	Control []float64
}

// Normalize produces a full-recording normalized trace for the segment
// at the given index. It fails with [ErrInvalidNormalization] for an
// unrecognized method.
func (d *Data) Normalize(rec int, method Method) (*Trace, error) {
	r, err := d.Recording(rec)
	if err != nil {
		return nil, err
	}

	switch method {
	case MethodRaw:
		return &Trace{
			Time:    append([]float64(nil), r.Time...),
			Signal:  append([]float64(nil), r.Signal...),
			Control: append([]float64(nil), r.Control...),
		}, nil

	case MethodDeltaFF:
		fit := fitControl(r.Signal, r.Control)
		dff := make([]float64, r.Len())
		for i := range dff {
			dff[i] = (r.Signal[i] - fit[i]) / fit[i]
		}

		return &Trace{
			Time:    append([]float64(nil), r.Time...),
			Signal:  dff,
			Control: fit,
		}, nil

	case MethodZScore:
		fit := fitControl(r.Signal, r.Control)
		dff := make([]float64, r.Len())
		for i := range dff {
			dff[i] = (r.Signal[i] - fit[i]) / fit[i]
		}

		mean, std := baseline.MeanStd(dff)
		z := make([]float64, len(dff))
		for i, x := range dff {
			z[i] = (x - mean) / std
		}

		return &Trace{
			Time:    append([]float64(nil), r.Time...),
			Signal:  z,
			Control: fit,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidNormalization, method)
	}
}

// fitControl scales the control channel onto the signal channel by
// ordinary least squares (fit = a*control + b) and returns the fitted
// baseline. A zero-variance control channel leaves the baseline at the
// raw control values, since the slope is then unidentifiable.
func fitControl(signal, control []float64) []float64 {
	n := len(control)
	out := make([]float64, n)

	meanC, stdC := baseline.MeanStd(control)
	if stdC == 0 {
		copy(out, control)
		return out
	}

	meanS := baseline.Mean(signal)

	var cov float64
	for i := range control {
		cov += (control[i] - meanC) * (signal[i] - meanS)
	}
	cov /= float64(n)

	slope := cov / (stdC * stdC)
	intercept := meanS - slope*meanC

	vecmath.ScaleBlock(out, control, slope)
	for i := range out {
		out[i] += intercept
	}

	return out
}
