// Package spectrum provides frequency-domain summaries of extracted
// perievent segments: magnitude and power spectra of a windowed, detrended
// fluorescence trace.
package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-photometry/window"
)

// ErrEmptySignal reports an empty input trace.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// Spectrum holds one-sided spectral estimates for a real-valued trace.
type Spectrum struct {
	Freqs     []float64 // bin center frequencies in Hz [0..Nyquist]
	Magnitude []float64 // |X[k]| per bin
	Power     []float64 // |X[k]|^2 per bin
	FFTSize   int
}

// Config holds spectral estimation parameters.
type Config struct {
	SampleRate float64     // required, Hz
	FFTSize    int         // 0 = next power of two >= len(signal)
	WindowType window.Type // taper applied before the transform
	Detrend    bool        // subtract the mean before tapering
}

// Analyze computes a one-sided magnitude and power spectrum of the trace.
// The signal is optionally detrended, tapered, zero-padded to the FFT
// size, and transformed with an FFT plan. Magnitude and power bins are
// computed with SIMD block operations.
func Analyze(signal []float64, cfg Config) (*Spectrum, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %g", cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if fftSize < len(signal) {
		return nil, fmt.Errorf("spectrum: fft size %d smaller than signal length %d", fftSize, len(signal))
	}

	var offset float64
	if cfg.Detrend {
		var sum float64
		for _, x := range signal {
			sum += x
		}
		offset = sum / float64(len(signal))
	}

	coeffs := window.Generate(cfg.WindowType, len(signal))

	inData := make([]complex128, fftSize)
	for i, x := range signal {
		inData[i] = complex((x-offset)*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("spectrum: forward transform failed: %w", err)
	}

	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	pow := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)
	vecmath.Power(pow, re, im)

	freqs := make([]float64, binCount)
	binWidth := cfg.SampleRate / float64(fftSize)
	for i := range freqs {
		freqs[i] = float64(i) * binWidth
	}

	return &Spectrum{
		Freqs:     freqs,
		Magnitude: mag,
		Power:     pow,
		FFTSize:   fftSize,
	}, nil
}

// PeakFrequency returns the frequency of the largest power bin above DC.
// Returns 0 for spectra with fewer than 2 bins.
func (s *Spectrum) PeakFrequency() float64 {
	if len(s.Power) < 2 {
		return 0
	}

	best := 1
	for i := 2; i < len(s.Power); i++ {
		if s.Power[i] > s.Power[best] {
			best = i
		}
	}

	return s.Freqs[best]
}

// BandPower returns the summed power of all bins within [lo, hi] Hz.
func (s *Spectrum) BandPower(lo, hi float64) float64 {
	var sum float64
	for i, f := range s.Freqs {
		if f >= lo && f <= hi {
			sum += s.Power[i]
		}
	}

	return sum
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
