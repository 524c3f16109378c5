// Package integrate provides numeric integration of sampled signals over
// possibly non-uniform time axes.
package integrate

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientSamples reports a segment too short for the
	// requested integration rule.
	ErrInsufficientSamples = errors.New("integrate: insufficient samples")

	errLengthMismatch = errors.New("integrate: y and x must have same length")
)

// Trapezoid integrates y over x using the composite trapezoidal rule.
// At least 2 samples are required.
func Trapezoid(y, x []float64) (float64, error) {
	if len(y) != len(x) {
		return 0, errLengthMismatch
	}

	if len(y) < 2 {
		return 0, fmt.Errorf("%w: trapezoid needs >= 2 points, got %d", ErrInsufficientSamples, len(y))
	}

	var area float64
	for i := 1; i < len(y); i++ {
		area += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}

	return area, nil
}

// Simpson integrates y over x using the composite Simpson rule
// generalized to non-uniform spacing: each pair of adjacent intervals is
// fit with a quadratic through its three samples. An odd trailing
// interval is closed with a trapezoid. At least 3 samples are required.
//
// For uniformly spaced samples this reduces to the classic 1-4-1 rule;
// for linear signals the result is exact either way.
func Simpson(y, x []float64) (float64, error) {
	if len(y) != len(x) {
		return 0, errLengthMismatch
	}

	n := len(y)
	if n < 3 {
		return 0, fmt.Errorf("%w: simpson needs >= 3 points, got %d", ErrInsufficientSamples, n)
	}

	var area float64

	// Quadratic fit over interval pairs [i, i+2].
	i := 0
	for ; i+2 < n; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hSum := h0 + h1

		area += hSum / 6 * ((2-h1/h0)*y[i] +
			hSum*hSum/(h0*h1)*y[i+1] +
			(2-h0/h1)*y[i+2])
	}

	// Odd interval count: trapezoid over the last interval.
	if i == n-2 {
		area += (x[n-1] - x[n-2]) * (y[n-1] + y[n-2]) / 2
	}

	return area, nil
}
