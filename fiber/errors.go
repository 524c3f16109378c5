package fiber

import "errors"

var (
	// ErrRecordingNotFound reports that no recording spans the
	// requested timestamp.
	ErrRecordingNotFound = errors.New("fiber: no recording at timestamp")

	// ErrInvalidNormalization reports an unrecognized normalization
	// method selector.
	ErrInvalidNormalization = errors.New("fiber: invalid normalization method")

	errEmptyRecording    = errors.New("fiber: recording must not be empty")
	errLengthMismatch    = errors.New("fiber: time, signal, and control must have same length")
	errNonIncreasingTime = errors.New("fiber: time values must be strictly increasing")
)
