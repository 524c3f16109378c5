package perievent

import "fmt"

// Window is a perievent time span: Pre seconds before the event and Post
// seconds after it. Both durations must be non-negative.
type Window struct {
	Pre  float64
	Post float64
}

// Validate checks the window durations.
func (w Window) Validate() error {
	if w.Pre < 0 || w.Post < 0 {
		return fmt.Errorf("perievent: window durations must be >= 0: (%g, %g)", w.Pre, w.Post)
	}

	return nil
}

// String formats the window as "(pre, post)" in seconds.
func (w Window) String() string {
	return fmt.Sprintf("(%gs, %gs)", w.Pre, w.Post)
}
