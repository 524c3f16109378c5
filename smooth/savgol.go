package smooth

import "fmt"

// SavitzkyGolay smooths data with a local least-squares polynomial fit
// of the given order over a sliding window. The window length must be
// odd and larger than the polynomial order. The output has the same
// length as the input: interior samples use the centered fit, and each
// edge is filled by evaluating a single polynomial fit over the first
// (or last) full window, so the edges are not flattened by padding.
func SavitzkyGolay(data []float64, window, polyOrder int) ([]float64, error) {
	if window%2 == 0 {
		return nil, fmt.Errorf("smooth: window length must be odd: %d", window)
	}

	if polyOrder >= window {
		return nil, fmt.Errorf("%w: order=%d window=%d", ErrInvalidPolyOrder, polyOrder, window)
	}

	if window > len(data) {
		return nil, fmt.Errorf("%w: window %d > %d samples", ErrWindowTooLong, window, len(data))
	}

	half := window / 2
	weights := centerWeights(window, polyOrder)

	out := make([]float64, len(data))

	// Interior: convolution with the center-evaluation weights.
	for i := half; i < len(data)-half; i++ {
		var acc float64
		for j, w := range weights {
			acc += w * data[i-half+j]
		}
		out[i] = acc
	}

	// Edges: fit one polynomial per edge window and evaluate it at the
	// uncovered positions.
	head := polyFit(data[:window], polyOrder)
	for i := range half {
		out[i] = polyEval(head, float64(i))
	}

	tail := polyFit(data[len(data)-window:], polyOrder)
	for i := len(data) - half; i < len(data); i++ {
		out[i] = polyEval(tail, float64(i-(len(data)-window)))
	}

	return out, nil
}

// centerWeights returns the convolution weights that evaluate the local
// least-squares polynomial at the window center. With centered abscissae
// x = -h..h, the smoothed center value is e0' (A'A)^-1 A' y, so the
// weights are A (A'A)^-1 e0.
func centerWeights(window, polyOrder int) []float64 {
	half := window / 2
	cols := polyOrder + 1

	// Vandermonde matrix over centered positions.
	a := make([][]float64, window)
	for j := range a {
		a[j] = make([]float64, cols)
		x := float64(j - half)
		p := 1.0
		for k := range cols {
			a[j][k] = p
			p *= x
		}
	}

	g := gram(a)

	e0 := make([]float64, cols)
	e0[0] = 1
	z := solve(g, e0)

	weights := make([]float64, window)
	for j := range weights {
		var acc float64
		for k := range cols {
			acc += a[j][k] * z[k]
		}
		weights[j] = acc
	}

	return weights
}

// polyFit fits a polynomial of the given order to y over abscissae
// 0..len(y)-1 and returns the coefficients in ascending power order.
func polyFit(y []float64, polyOrder int) []float64 {
	cols := polyOrder + 1

	a := make([][]float64, len(y))
	for j := range a {
		a[j] = make([]float64, cols)
		p := 1.0
		for k := range cols {
			a[j][k] = p
			p *= float64(j)
		}
	}

	rhs := make([]float64, cols)
	for k := range cols {
		for j := range y {
			rhs[k] += a[j][k] * y[j]
		}
	}

	return solve(gram(a), rhs)
}

// polyEval evaluates the polynomial with ascending-power coefficients at x.
func polyEval(coeffs []float64, x float64) float64 {
	var acc float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}

// gram returns A'A for the column-major-independent matrix a.
func gram(a [][]float64) [][]float64 {
	cols := len(a[0])

	g := make([][]float64, cols)
	for i := range g {
		g[i] = make([]float64, cols)
		for j := range cols {
			var acc float64
			for r := range a {
				acc += a[r][i] * a[r][j]
			}
			g[i][j] = acc
		}
	}

	return g
}

// solve performs in-place Gaussian elimination with partial pivoting on
// the (small, symmetric positive definite) normal-equation system.
func solve(m [][]float64, rhs []float64) []float64 {
	n := len(m)

	b := append([]float64(nil), rhs...)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs(m[r][col]) > abs(m[pivot][col]) {
				pivot = r
			}
		}

		m[col], m[pivot] = m[pivot], m[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			f := m[r][col] / m[col][col]
			for c := col; c < n; c++ {
				m[r][c] -= f * m[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		acc := b[r]
		for c := r + 1; c < n; c++ {
			acc -= m[r][c] * x[c]
		}
		x[r] = acc / m[r][r]
	}

	return x
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
