package xrm

// Callback is the signature every bound handler method and every
// registered listener uses. The host invokes it with the context of
// the event that fired.
type Callback func(ctx EventContext)

// EventContext is the host's per-event execution context. One is
// handed to the bind pass at form load, and a fresh one accompanies
// every subsequent event delivery.
type EventContext interface {
	// FormContext returns the live form graph for the event.
	// This is the only host call the dispatcher treats as fallible:
	// without a form context nothing can be bound.
	FormContext() (FormContext, error)

	// EventSource returns the component the event originated from,
	// or nil for form-level events.
	EventSource() Component
}

// FormContext is the live form graph.
type FormContext interface {
	// Mode reports the form's current mode.
	Mode() FormMode

	// Attributes resolves attribute names to live attributes.
	// Names that do not exist on the form are simply absent from the
	// result; resolution never fails.
	Attributes(names ...string) []Component

	// Tabs resolves tab names to live tabs.
	Tabs(names ...string) []Component

	// Controls resolves control names to live controls of any kind
	// (grids, frames, lookups, custom controls, search widgets).
	Controls(names ...string) []Component

	// Form-level subscription points, one per global event.
	AddOnLoad(cb Callback)
	AddOnDataLoad(cb Callback)
	AddOnLoaded(cb Callback)
	AddOnSave(cb Callback)
	AddOnPostSave(cb Callback)
	AddOnPreProcessStatusChange(cb Callback)
	AddOnProcessStatusChange(cb Callback)
	AddOnPreStageChange(cb Callback)
	AddOnStageChange(cb Callback)
	AddOnStageSelected(cb Callback)
}
