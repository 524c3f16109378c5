// Package smooth provides low-pass smoothing for derived fluorescence
// series: a Savitzky-Golay polynomial-fit filter and a trailing moving
// average. Window lengths can be given in samples or as a time duration
// resolved against the series' own sampling rate.
package smooth

import (
	"fmt"
	"math"
	"time"
)

// Method identifies a smoothing method.
type Method int

const (
	// MethodSavitzkyGolay fits a local polynomial over a sliding,
	// odd-length window. Output length equals input length.
	MethodSavitzkyGolay Method = iota
	// MethodMovingAverage takes the arithmetic mean over a trailing
	// window. Output is shorter than the input by window-1 samples and
	// the time axis is the moving average of the input time axis.
	MethodMovingAverage
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodSavitzkyGolay:
		return "savitzky-golay"
	case MethodMovingAverage:
		return "moving-average"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

const defaultPolyOrder = 3

type config struct {
	windowSamples  int
	windowDuration time.Duration
	polyOrder      int
}

// Option configures smoothing.
type Option func(*config)

// WithWindow sets the window length in samples.
func WithWindow(samples int) Option {
	return func(c *config) {
		if samples > 0 {
			c.windowSamples = samples
		}
	}
}

// WithWindowDuration sets the window length as a time span, converted to
// samples via ceil(seconds * sampling rate).
func WithWindowDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.windowDuration = d
		}
	}
}

// WithPolyOrder sets the polynomial order for the Savitzky-Golay filter.
func WithPolyOrder(order int) Option {
	return func(c *config) {
		if order >= 0 {
			c.polyOrder = order
		}
	}
}

// Smooth filters data sampled at the given time axis. Without an explicit
// window option the window defaults to ceil(rate/4) samples, roughly
// 250 ms. For the Savitzky-Golay method an even window length is
// incremented to the next odd value, since the filter needs a center
// sample.
//
// It returns a time axis and smoothed values of matching length; see the
// [Method] constants for the per-method length contract.
func Smooth(timeAxis, data []float64, method Method, opts ...Option) (t, y []float64, err error) {
	if len(timeAxis) != len(data) {
		return nil, nil, fmt.Errorf("%w: time=%d data=%d", errLengthMismatch, len(timeAxis), len(data))
	}

	if len(data) < 2 {
		return nil, nil, fmt.Errorf("smooth: need >= 2 samples, got %d", len(data))
	}

	cfg := config{polyOrder: defaultPolyOrder}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rate := samplingRate(timeAxis)

	win := cfg.windowSamples
	switch {
	case win > 0:
	case cfg.windowDuration > 0:
		win = int(math.Ceil(cfg.windowDuration.Seconds() * rate))
	default:
		win = int(math.Ceil(rate / 4))
	}

	if win < 1 {
		win = 1
	}

	switch method {
	case MethodSavitzkyGolay:
		if win%2 == 0 {
			win++
		}

		smoothed, err := SavitzkyGolay(data, win, cfg.polyOrder)
		if err != nil {
			return nil, nil, err
		}

		return append([]float64(nil), timeAxis...), smoothed, nil

	case MethodMovingAverage:
		if win > len(data) {
			return nil, nil, fmt.Errorf("%w: window %d > %d samples", ErrWindowTooLong, win, len(data))
		}

		return movingAverage(timeAxis, win), movingAverage(data, win), nil

	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidMethod, method)
	}
}

// movingAverage returns the trailing arithmetic means over windows of
// length win. The result has len(data)-win+1 values.
func movingAverage(data []float64, win int) []float64 {
	out := make([]float64, len(data)-win+1)

	var sum float64
	for i, x := range data {
		sum += x
		if i >= win {
			sum -= data[i-win]
		}

		if i >= win-1 {
			out[i-win+1] = sum / float64(win)
		}
	}

	return out
}

// samplingRate returns the reciprocal of the mean time delta.
func samplingRate(timeAxis []float64) float64 {
	n := len(timeAxis)
	if n < 2 {
		return 0
	}

	meanDelta := (timeAxis[n-1] - timeAxis[0]) / float64(n-1)
	if meanDelta == 0 {
		return 0
	}

	return 1 / meanDelta
}
