package fiber

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-photometry/internal/testutil"
	"github.com/cwbudde/algo-photometry/stats/baseline"
)

const tolerance = 1e-9

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want Method
	}{
		{"raw", MethodRaw},
		{"F", MethodDeltaFF},
		{"Z", MethodZScore},
	}

	for _, tc := range cases {
		got, err := ParseMethod(tc.in)
		if err != nil {
			t.Errorf("ParseMethod(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseMethod(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMethod_Invalid(t *testing.T) {
	for _, in := range []string{"", "f", "z", "zscore", "default"} {
		_, err := ParseMethod(in)
		if !errors.Is(err, ErrInvalidNormalization) {
			t.Errorf("ParseMethod(%q): got %v, want ErrInvalidNormalization", in, err)
		}
	}
}

func TestNormalize_RawCopies(t *testing.T) {
	rec := mustRecording(t, 0, 10, 11, testutil.Ramp(2, 4, 11), testutil.DC(1, 11))
	data := NewData(rec)

	trace, err := data.Normalize(0, MethodRaw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, trace.Signal, rec.Signal, 0)
	testutil.RequireSliceNearlyEqual(t, trace.Control, rec.Control, 0)

	// The trace must be a copy, not a view of the recording.
	trace.Signal[0] = -100
	if rec.Signal[0] == -100 {
		t.Error("raw trace aliases the recording")
	}
}

func TestNormalize_DeltaFF_ConstantControl(t *testing.T) {
	// Control constant at 1.0, signal constant at 2.0: the fit falls
	// back to the raw control and dF/F is (2-1)/1 = 1 everywhere.
	rec := mustRecording(t, 0, 100, 201, testutil.DC(2, 201), testutil.DC(1, 201))
	data := NewData(rec)

	trace, err := data.Normalize(0, MethodDeltaFF)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, trace.Signal, testutil.DC(1, 201), tolerance)
}

func TestNormalize_DeltaFF_FittedControlRemovesArtifact(t *testing.T) {
	// Signal is an exact affine image of the control channel, so the
	// fitted baseline matches the signal and dF/F vanishes.
	control := testutil.DeterministicSine(0.5, 100, 0.3, 5, 400)
	signal := make([]float64, len(control))
	for i, c := range control {
		signal[i] = 2*c + 1
	}

	rec := mustRecording(t, 0, 100, 400, signal, control)
	data := NewData(rec)

	trace, err := data.Normalize(0, MethodDeltaFF)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, trace.Signal, testutil.DC(0, 400), 1e-9)
}

func TestNormalize_ZScore_WholeRecording(t *testing.T) {
	control := testutil.DC(1, 500)
	signal := testutil.DeterministicSine(1, 100, 0.5, 2, 500)

	rec := mustRecording(t, 0, 100, 500, signal, control)
	data := NewData(rec)

	trace, err := data.Normalize(0, MethodZScore)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	mean, std := baseline.MeanStd(trace.Signal)
	if math.Abs(mean) > tolerance {
		t.Errorf("z-score mean: got %g, want 0", mean)
	}
	if math.Abs(std-1) > tolerance {
		t.Errorf("z-score std: got %g, want 1", std)
	}
}

func TestNormalize_InvalidMethod(t *testing.T) {
	data := NewData(mustRecording(t, 0, 10, 11, testutil.DC(2, 11), testutil.DC(1, 11)))

	_, err := data.Normalize(0, Method(42))
	if !errors.Is(err, ErrInvalidNormalization) {
		t.Errorf("got %v, want ErrInvalidNormalization", err)
	}
}
