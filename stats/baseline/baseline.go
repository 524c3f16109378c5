// Package baseline provides descriptive and baseline-relative statistics
// for fluorescence traces. Baseline statistics (mean/std or median/MAD)
// are computed from a pre-event segment only and applied to a full
// perievent window, so post-event scores stay baseline-relative.
package baseline

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of the signal using Kahan summation
// for numerical stability.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Std returns the population standard deviation of the signal.
func Std(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	// Welford accumulators.
	var mean, m2 float64
	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return math.Sqrt(m2 / float64(n))
}

// MeanStd returns the mean and population standard deviation in one pass.
func MeanStd(signal []float64) (mean, std float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0
	}

	var m2 float64
	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, math.Sqrt(m2 / float64(n))
}

// Median returns the median of the signal. The input is not modified.
func Median(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, signal)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MAD returns the median absolute deviation of the signal:
// median(|x - median(x)|). The input is not modified.
func MAD(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	med := Median(signal)
	dev := make([]float64, n)
	for i, x := range signal {
		dev[i] = math.Abs(x - med)
	}
	sort.Float64s(dev)

	if n%2 == 1 {
		return dev[n/2]
	}

	return (dev[n/2-1] + dev[n/2]) / 2
}

// ZScores scores every sample of the window against the mean and
// population standard deviation of the pre-event baseline segment.
// A zero-variance baseline yields NaN or infinite scores; callers
// that need a hard failure should check Std(pre) first.
func ZScores(window, pre []float64) []float64 {
	mean, std := MeanStd(pre)

	out := make([]float64, len(window))
	for i, x := range window {
		out[i] = (x - mean) / std
	}

	return out
}

// RobustZScores scores every sample of the window against the median and
// median absolute deviation of the pre-event baseline segment. A zero-MAD
// baseline yields NaN or Inf scores, mirroring the ZScores policy.
func RobustZScores(window, pre []float64) []float64 {
	med := Median(pre)
	mad := MAD(pre)

	out := make([]float64, len(window))
	for i, x := range window {
		out[i] = (x - med) / mad
	}

	return out
}
