package binding

import (
	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// Class is a declaration builder scoped to one handler type.
type Class[T any] struct {
	registry *Registry
	key      ClassKey
}

// For starts declarations for handler type T against the process-wide
// registry.
func For[T any]() *Class[T] {
	return ForIn[T](Default())
}

// ForIn starts declarations for handler type T against an explicit
// registry.
func ForIn[T any](r *Registry) *Class[T] {
	return &Class[T]{registry: r, key: KeyFor[T]()}
}

// Method scopes subsequent declarations to one method name. The method
// must have the signature func(xrm.EventContext); methods that do not
// exist or do not match are skipped at dispatch time, never here.
func (c *Class[T]) Method(name string) *Method[T] {
	return &Method[T]{class: c, name: name}
}

// Method declares bindings for a single handler method. Every call
// performs one registry upsert, so calls may be chained in any order
// and repeated freely.
type Method[T any] struct {
	class *Class[T]
	name  string
}

// On binds the method to one or more global event kinds.
func (m *Method[T]) On(kinds ...event.Kind) *Method[T] {
	for _, kind := range kinds {
		m.class.registry.Upsert(m.class.key, m.name, &EventBinding{Kind: kind}, nil)
	}
	return m
}

// OnComponents binds the method to a component-scoped event kind for
// the named components. Repeat names merge into one binding.
func (m *Method[T]) OnComponents(kind event.Kind, names ...string) *Method[T] {
	m.class.registry.Upsert(m.class.key, m.name, &EventBinding{Kind: kind, Components: names}, nil)
	return m
}

// Modes restricts the method to the given form modes. Repeated calls
// union; a method with no Modes call runs in every mode.
func (m *Method[T]) Modes(modes ...xrm.FormMode) *Method[T] {
	m.class.registry.Upsert(m.class.key, m.name, nil, modes)
	return m
}
