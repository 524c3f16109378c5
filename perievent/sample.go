package perievent

import "sort"

// nearestIndex returns the index of the time value with minimum absolute
// distance from target, by binary search over the strictly increasing
// time axis. When target lies exactly midway between two samples the tie
// resolves to the earlier index, or to the later index when last is set.
// Window boundaries use the asymmetric pair (first at the start, last at
// the end) so tie-breaking can never shrink the window.
func nearestIndex(timeAxis []float64, target float64, last bool) int {
	i := sort.SearchFloat64s(timeAxis, target)

	if i == 0 {
		return 0
	}

	if i == len(timeAxis) {
		return len(timeAxis) - 1
	}

	dLo := target - timeAxis[i-1]
	dHi := timeAxis[i] - target

	switch {
	case dLo < dHi:
		return i - 1
	case dHi < dLo:
		return i
	case last:
		return i
	default:
		return i - 1
	}
}

// windowIndices maps an event time and window onto index bounds in the
// time axis: startIdx <= eventIdx <= endIdx, all valid indices.
func windowIndices(timeAxis []float64, eventTime float64, w Window) (startIdx, eventIdx, endIdx int) {
	startIdx = nearestIndex(timeAxis, eventTime-w.Pre, false)
	eventIdx = nearestIndex(timeAxis, eventTime, false)
	endIdx = nearestIndex(timeAxis, eventTime+w.Post, true)

	return startIdx, eventIdx, endIdx
}
