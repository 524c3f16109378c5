package perievent

import "testing"

func TestNearestIndex(t *testing.T) {
	axis := []float64{0, 1, 2, 3, 4}

	cases := []struct {
		name   string
		target float64
		last   bool
		want   int
	}{
		{"exact hit", 2, false, 2},
		{"below range", -5, false, 0},
		{"above range", 9, true, 4},
		{"closer to lower", 1.2, false, 1},
		{"closer to upper", 1.8, false, 2},
		{"midpoint tie, first", 1.5, false, 1},
		{"midpoint tie, last", 1.5, true, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nearestIndex(axis, tc.target, tc.last); got != tc.want {
				t.Errorf("nearestIndex(%g, last=%v): got %d, want %d", tc.target, tc.last, got, tc.want)
			}
		})
	}
}

func TestWindowIndices_Ordering(t *testing.T) {
	axis := make([]float64, 1001)
	for i := range axis {
		axis[i] = float64(i) / 100 // 100 Hz, 0..10 s
	}

	cases := []struct {
		name  string
		event float64
		w     Window
	}{
		{"centered", 5, Window{Pre: 2, Post: 2}},
		{"window clipped at start", 0.5, Window{Pre: 2, Post: 1}},
		{"window clipped at end", 9.8, Window{Pre: 1, Post: 2}},
		{"zero-length window", 5, Window{}},
		{"asymmetric", 3, Window{Pre: 0.5, Post: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, event, end := windowIndices(axis, tc.event, tc.w)

			if start > event || event > end {
				t.Fatalf("ordering violated: start=%d event=%d end=%d", start, event, end)
			}
			if start < 0 || end >= len(axis) {
				t.Fatalf("out of bounds: start=%d end=%d len=%d", start, end, len(axis))
			}
		})
	}
}

func TestWindowIndices_ExactBounds(t *testing.T) {
	axis := make([]float64, 101)
	for i := range axis {
		axis[i] = float64(i) / 10 // 10 Hz, 0..10 s
	}

	start, event, end := windowIndices(axis, 5, Window{Pre: 2, Post: 3})

	if start != 30 || event != 50 || end != 80 {
		t.Errorf("got (%d, %d, %d), want (30, 50, 80)", start, event, end)
	}
}

func TestWindowIndices_TieBreakNeverShrinksWindow(t *testing.T) {
	// Samples every 0.25 s; window boundaries at 0.375 and 0.875 are
	// exactly between two samples (both exactly representable). The
	// start boundary resolves down, the end boundary resolves up.
	axis := []float64{0, 0.25, 0.5, 0.75, 1.0, 1.25}

	start, _, end := windowIndices(axis, 0.5, Window{Pre: 0.125, Post: 0.375})

	if start != 1 {
		t.Errorf("start: got %d, want 1 (tie resolves to earlier sample)", start)
	}
	if end != 4 {
		t.Errorf("end: got %d, want 4 (tie resolves to later sample)", end)
	}
}
