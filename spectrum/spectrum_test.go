package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-photometry/internal/testutil"
	"github.com/cwbudde/algo-photometry/window"
)

func TestAnalyze_PeakFrequency(t *testing.T) {
	// 5 Hz sine at 1024 Hz over one second: the peak bin lands on 5 Hz
	// exactly (bin width 1 Hz).
	signal := testutil.DeterministicSine(5, 1024, 1, 0, 1024)

	spec, err := Analyze(signal, Config{SampleRate: 1024, WindowType: window.TypeHann})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got := spec.PeakFrequency(); math.Abs(got-5) > 1e-9 {
		t.Errorf("peak frequency: got %g, want 5", got)
	}
}

func TestAnalyze_BinCountAndFreqs(t *testing.T) {
	signal := testutil.DeterministicNoise(42, 1, 300)

	spec, err := Analyze(signal, Config{SampleRate: 100})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// 300 samples pad to a 512-point FFT: 257 one-sided bins.
	if spec.FFTSize != 512 {
		t.Errorf("fft size: got %d, want 512", spec.FFTSize)
	}
	if len(spec.Freqs) != 257 || len(spec.Power) != 257 || len(spec.Magnitude) != 257 {
		t.Errorf("bins: got (%d, %d, %d), want 257", len(spec.Freqs), len(spec.Power), len(spec.Magnitude))
	}

	if spec.Freqs[0] != 0 {
		t.Errorf("first bin: got %g, want 0 (DC)", spec.Freqs[0])
	}
	if math.Abs(spec.Freqs[256]-50) > 1e-9 {
		t.Errorf("last bin: got %g, want 50 (Nyquist)", spec.Freqs[256])
	}
}

func TestAnalyze_DetrendRemovesDC(t *testing.T) {
	signal := testutil.DeterministicSine(8, 256, 0.1, 10, 256)

	spec, err := Analyze(signal, Config{SampleRate: 256, Detrend: true})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// With the large offset removed, the oscillation dominates DC.
	if spec.Power[0] >= spec.Power[8] {
		t.Errorf("DC bin %g not below signal bin %g", spec.Power[0], spec.Power[8])
	}
}

func TestAnalyze_EmptySignal(t *testing.T) {
	_, err := Analyze(nil, Config{SampleRate: 100})
	if !errors.Is(err, ErrEmptySignal) {
		t.Errorf("got %v, want ErrEmptySignal", err)
	}
}

func TestAnalyze_BadSampleRate(t *testing.T) {
	if _, err := Analyze([]float64{1, 2, 3}, Config{}); err == nil {
		t.Error("want error for missing sample rate")
	}
}

func TestBandPower(t *testing.T) {
	signal := testutil.DeterministicSine(5, 1024, 1, 0, 1024)

	spec, err := Analyze(signal, Config{SampleRate: 1024, WindowType: window.TypeHann})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	inBand := spec.BandPower(3, 7)
	outBand := spec.BandPower(100, 200)

	if inBand <= outBand {
		t.Errorf("in-band power %g not above out-of-band %g", inBand, outBand)
	}
}
