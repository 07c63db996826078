package dispatch

import "sync/atomic"

// statsCounters accumulates across bind passes.
type statsCounters struct {
	registered    atomic.Int64
	skippedMode   atomic.Int64
	missingMethod atomic.Int64
	unresolved    atomic.Int64
}

// Stats is a point-in-time snapshot of a dispatcher's counters.
type Stats struct {
	// Registered is the number of listeners attached.
	Registered int64

	// SkippedByMode is the number of method bindings excluded by a
	// form-mode filter.
	SkippedByMode int64

	// MissingMethods is the number of declarations whose method was
	// not defined on the handler.
	MissingMethods int64

	// UnresolvedComponents is the number of declared component names
	// that did not resolve to a capability-matching live component.
	UnresolvedComponents int64
}

// Stats returns a snapshot of the dispatcher's counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Registered:           d.stats.registered.Load(),
		SkippedByMode:        d.stats.skippedMode.Load(),
		MissingMethods:       d.stats.missingMethod.Load(),
		UnresolvedComponents: d.stats.unresolved.Load(),
	}
}
