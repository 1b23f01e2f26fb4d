package hostcanvas

import "time"

// debugStats holds per-frame event metrics. Counters are always maintained;
// they are only logged when Config.Debug is set.
type debugStats struct {
	eventsBuilt      int
	eventsDispatched int
	listenersRun     int
	listenerFailures int
	dispatchTime     time.Duration
}

// frameStats accumulates the current frame's counters. View.Update logs and
// resets it.
var frameStats debugStats

// debugLog writes the frame counters at debug level.
func debugLog(stats debugStats) {
	Logger().Debug("frame",
		"built", stats.eventsBuilt,
		"dispatched", stats.eventsDispatched,
		"listeners", stats.listenersRun,
		"failures", stats.listenerFailures,
		"dispatch", stats.dispatchTime,
	)
}

// debugCheckPointerCount warns when more contacts are tracked than the host
// advertises. That usually means an end or cancel phase was never delivered.
func debugCheckPointerCount(t *PointerTable, max int) {
	if max > 0 && t.Len() > max {
		Logger().Warn("tracked contacts exceed max touch points",
			"tracked", t.Len(), "max", max, "ids", t.IDs())
	}
}
