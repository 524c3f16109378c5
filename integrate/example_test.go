package integrate_test

import (
	"fmt"

	"github.com/cwbudde/algo-photometry/integrate"
)

func ExampleSimpson() {
	x := []float64{0, 0.5, 1, 1.5, 2}
	y := []float64{0, 0.25, 1, 2.25, 4} // y = x^2

	area, _ := integrate.Simpson(y, x)
	fmt.Printf("%.4f\n", area)

	// Output:
	// 2.6667
}

func ExampleTrapezoid() {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}

	area, _ := integrate.Trapezoid(y, x)
	fmt.Printf("%.1f\n", area)

	// Output:
	// 2.0
}
