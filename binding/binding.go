package binding

import (
	"reflect"

	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// ClassKey identifies a handler class. It is the reflect.Type of the
// concrete handler with any pointer indirection stripped, so two
// declarations collide only when they truly name the same type.
type ClassKey = reflect.Type

// KeyOf returns the ClassKey for a live handler instance.
func KeyOf(instance any) ClassKey {
	t := reflect.TypeOf(instance)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// KeyFor returns the ClassKey for a handler type parameter.
func KeyFor[T any]() ClassKey {
	return KeyOf((*T)(nil))
}

// EventBinding associates one event kind with its target component
// names. Components is empty exactly when Kind is global; for
// component kinds it keeps first-appearance order with no duplicates.
type EventBinding struct {
	Kind       event.Kind
	Components []string
}

// clone returns a deep copy.
func (b EventBinding) clone() EventBinding {
	out := EventBinding{Kind: b.Kind}
	if len(b.Components) > 0 {
		out.Components = append([]string(nil), b.Components...)
	}
	return out
}

// merge folds names into the binding's component set, preserving
// first-appearance order. Duplicates are no-ops.
func (b *EventBinding) merge(names []string) {
	for _, name := range names {
		if !contains(b.Components, name) {
			b.Components = append(b.Components, name)
		}
	}
}

// MethodBinding is everything declared for one handler method: the
// events that invoke it and an optional form-mode allow-list. An empty
// Modes slice means the method runs in every mode.
type MethodBinding struct {
	Method   string
	Modes    []xrm.FormMode
	Bindings []EventBinding
}

// clone returns a deep copy.
func (m MethodBinding) clone() MethodBinding {
	out := MethodBinding{Method: m.Method}
	if len(m.Modes) > 0 {
		out.Modes = append([]xrm.FormMode(nil), m.Modes...)
	}
	if len(m.Bindings) > 0 {
		out.Bindings = make([]EventBinding, len(m.Bindings))
		for i, b := range m.Bindings {
			out.Bindings[i] = b.clone()
		}
	}
	return out
}

// Binding returns the EventBinding for kind, if declared.
func (m MethodBinding) Binding(kind event.Kind) (EventBinding, bool) {
	for _, b := range m.Bindings {
		if b.Kind == kind {
			return b, true
		}
	}
	return EventBinding{}, false
}

// AllowsMode reports whether the method's mode filter admits mode.
// The filter is an allow-list; absent means always allowed.
func (m MethodBinding) AllowsMode(mode xrm.FormMode) bool {
	if len(m.Modes) == 0 {
		return true
	}
	for _, allowed := range m.Modes {
		if allowed == mode {
			return true
		}
	}
	return false
}

func contains[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
