// Package xrm declares the boundary to the host form runtime.
//
// Everything in this package is owned by the host: the library never
// constructs live form objects, it only queries them during a single
// bind pass and registers callbacks against them. The interfaces here
// describe the minimum capability surface the dispatcher consumes:
//
//   - EventContext: handed to every callback and to the bind pass;
//     yields the form context and the component the event originated
//     from.
//   - FormContext: the live form graph. Component accessors resolve
//     names to live objects; the AddOn* methods are the form-level
//     subscription points for global events.
//   - Component capability interfaces (Attribute, Tab, GridControl,
//     IframeControl, LookupControl, OutputControl, KBSearchControl):
//     a resolved component supports an event family exactly when it
//     satisfies the family's interface. Type assertions against these
//     interfaces are the runtime type predicates.
//
// The xrmtest subpackage provides an in-memory implementation for
// tests and demos.
package xrm
