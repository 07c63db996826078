// Package binding accumulates event declarations per handler type.
//
// Declarations are the Go analogue of the original decorator
// annotations: explicit registration calls made while a handler
// package initializes, strictly before any form is bound. Each call is
// an upsert into a process-wide registry keyed by the handler's
// concrete type; repeated declarations for the same method merge
// instead of duplicating, so declaration order never matters.
//
// The typical shape, from a handler package's init:
//
//	func init() {
//		c := binding.For[*ContactMain]()
//		c.Method("OnSave").On(event.Save, event.PostSave)
//		c.Method("NameChanged").
//			OnComponents(event.AttributeChange, "firstname", "lastname").
//			Modes(xrm.ModeCreate, xrm.ModeUpdate)
//	}
//
// The dispatch package reads the registry back at form load.
package binding
