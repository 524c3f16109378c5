package smooth

import "errors"

var (
	// ErrInvalidMethod reports an unrecognized smoothing method selector.
	ErrInvalidMethod = errors.New("smooth: invalid method")

	// ErrWindowTooLong reports a window longer than the series itself.
	ErrWindowTooLong = errors.New("smooth: window too long")

	// ErrInvalidPolyOrder reports a polynomial order incompatible with
	// the window length.
	ErrInvalidPolyOrder = errors.New("smooth: polynomial order must be smaller than window length")

	errLengthMismatch = errors.New("smooth: time and data must have same length")
)
