package baseline

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestMean(t *testing.T) {
	cases := []struct {
		name   string
		signal []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3}, 3},
		{"symmetric", []float64{-1, 0, 1}, 0},
		{"constant", []float64{2.5, 2.5, 2.5, 2.5}, 2.5},
		{"mixed", []float64{1, 2, 3, 4}, 2.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mean(tc.signal); !almostEqual(got, tc.want, tolerance) {
				t.Errorf("Mean: got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestStd_Population(t *testing.T) {
	// Population std of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	signal := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Std(signal); !almostEqual(got, 2, tolerance) {
		t.Errorf("Std: got %g, want 2", got)
	}
}

func TestStd_Constant(t *testing.T) {
	if got := Std([]float64{5, 5, 5, 5}); got != 0 {
		t.Errorf("Std of constant signal: got %g, want 0", got)
	}
}

func TestMeanStd_MatchesSeparate(t *testing.T) {
	signal := []float64{0.3, -1.2, 4.5, 2.2, -0.7, 1.1}

	mean, std := MeanStd(signal)
	if !almostEqual(mean, Mean(signal), tolerance) {
		t.Errorf("mean: got %g, want %g", mean, Mean(signal))
	}
	if !almostEqual(std, Std(signal), tolerance) {
		t.Errorf("std: got %g, want %g", std, Std(signal))
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		name   string
		signal []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"unsorted input unchanged", []float64{9, -1, 5}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Median(tc.signal); !almostEqual(got, tc.want, tolerance) {
				t.Errorf("Median: got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestMedian_DoesNotModifyInput(t *testing.T) {
	signal := []float64{3, 1, 2}
	Median(signal)

	if signal[0] != 3 || signal[1] != 1 || signal[2] != 2 {
		t.Errorf("input modified: %v", signal)
	}
}

func TestMAD(t *testing.T) {
	// median = 3, deviations = {2, 1, 0, 1, 6}, MAD = 1.
	signal := []float64{1, 2, 3, 4, 9}
	if got := MAD(signal); !almostEqual(got, 1, tolerance) {
		t.Errorf("MAD: got %g, want 1", got)
	}
}

func TestZScores_BaselineProperty(t *testing.T) {
	pre := []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 1.2, 0.8}
	post := []float64{4.0, 5.0, 6.0}
	window := append(append([]float64(nil), pre...), post...)

	z := ZScores(window, pre)

	if len(z) != len(window) {
		t.Fatalf("length: got %d, want %d", len(z), len(window))
	}

	// Pre-segment scores must have mean ~0 and std ~1 by construction.
	preZ := z[:len(pre)]
	if m := Mean(preZ); !almostEqual(m, 0, tolerance) {
		t.Errorf("pre-segment z mean: got %g, want 0", m)
	}
	if s := Std(preZ); !almostEqual(s, 1, tolerance) {
		t.Errorf("pre-segment z std: got %g, want 1", s)
	}

	// Post-segment scores stay baseline-relative.
	mean, std := MeanStd(pre)
	for i, x := range post {
		want := (x - mean) / std
		if !almostEqual(z[len(pre)+i], want, tolerance) {
			t.Errorf("post z[%d]: got %g, want %g", i, z[len(pre)+i], want)
		}
	}
}

func TestZScores_ZeroVariancePropagatesNaN(t *testing.T) {
	pre := []float64{2, 2, 2, 2}
	window := []float64{2, 2, 2, 2, 2, 2}

	for i, z := range ZScores(window, pre) {
		if !math.IsNaN(z) {
			t.Errorf("index %d: got %g, want NaN", i, z)
		}
	}
}

func TestRobustZScores_BaselineProperty(t *testing.T) {
	pre := []float64{1, 2, 3, 4, 5, 6, 7}
	window := append(append([]float64(nil), pre...), 10, 20)

	rz := RobustZScores(window, pre)

	// Pre-segment robust scores must have median ~0.
	if m := Median(rz[:len(pre)]); !almostEqual(m, 0, tolerance) {
		t.Errorf("pre-segment robust z median: got %g, want 0", m)
	}

	med := Median(pre)
	mad := MAD(pre)
	want := (20 - med) / mad
	if got := rz[len(rz)-1]; !almostEqual(got, want, tolerance) {
		t.Errorf("post robust z: got %g, want %g", got, want)
	}
}

func TestRobustZScores_OutlierResistance(t *testing.T) {
	pre := []float64{1, 2, 3, 4, 5}
	preOutlier := []float64{1, 2, 3, 4, 500}

	window := []float64{3.5}

	clean := RobustZScores(window, pre)[0]
	dirty := RobustZScores(window, preOutlier)[0]

	// Median and MAD ignore the single outlier entirely.
	if !almostEqual(clean, dirty, tolerance) {
		t.Errorf("robust z changed under outlier: %g vs %g", clean, dirty)
	}
}
