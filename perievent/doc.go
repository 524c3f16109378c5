// Package perievent extracts, normalizes, and summarizes windowed
// fluorescence responses around behavioral event timestamps.
//
// Given an event time and a (pre, post) window, the pipeline locates the
// recording segment containing the event, slices the raw and normalized
// traces to the window, splits them into pre- and post-event segments at
// the event sample, scores the whole window against pre-event baseline
// statistics (mean/std and median/MAD), and integrates every
// representation per segment with the composite Simpson rule.
//
// Baseline statistics always come from the pre-event segment only, so
// post-event z-scores measure deviation from baseline rather than from
// the window itself. A constant pre-event baseline has zero variance and
// zero MAD; the scores then propagate NaN instead of failing the whole
// extraction, leaving the other representations intact.
//
//	session := perievent.NewSession(fiberData, events,
//	    perievent.WithDefaultWindow(perievent.Window{Pre: 5, Post: 5}))
//	res, err := session.Analyze(30.0)
//	if err != nil {
//	    // fiber.ErrRecordingNotFound, integrate.ErrInsufficientSamples, ...
//	}
//	fmt.Println(res.Stats.ZScore.Post.AUC)
package perievent
