// Package dispatch wires declared bindings to a live form.
//
// Apply is called exactly once per handler construction, at form load.
// It reads the binding registry for the handler's class, walks the
// event taxonomy in a fixed family order, and for each declared
// binding: applies the form-mode allow-list, looks up the handler
// method, and registers it as a listener. Global kinds register
// against the form-level subscription point; component kinds resolve
// their declared names through the form graph, filter the results by
// the family's capability interface, and register against every
// resolved component.
//
// Nothing in a well-formed or malformed declaration makes Apply fail:
// unknown methods and unresolved component names degrade to skipped
// registrations plus grouped warnings, flushed once at the end of the
// pass. The only error Apply returns is the host refusing to yield a
// form context.
package dispatch
