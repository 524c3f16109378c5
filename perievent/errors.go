package perievent

import "errors"

// ErrUnknownSeries reports a request for a derived series name that does
// not exist on a result.
var ErrUnknownSeries = errors.New("perievent: unknown series")
