// Package window provides taper functions for spectral estimation of
// extracted perievent segments.
package window

import (
	"fmt"
	"math"
)

// Type identifies a taper function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the taper name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Generate returns the symmetric taper coefficients for the given type
// and length. Unknown types fall back to rectangular. A non-positive
// length returns nil.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	nm1 := float64(length - 1)

	for i := range out {
		phase := 2 * math.Pi * float64(i) / nm1

		switch t {
		case TypeHann:
			out[i] = 0.5 - 0.5*math.Cos(phase)
		case TypeHamming:
			out[i] = 0.54 - 0.46*math.Cos(phase)
		case TypeBlackman:
			out[i] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
		default:
			out[i] = 1
		}
	}

	return out
}

// CoherentGain returns the mean of the taper coefficients. Dividing a
// windowed spectrum by the coherent gain restores amplitude calibration.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	var sum float64
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
