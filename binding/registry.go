package binding

import (
	"sync"

	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// Registry accumulates method bindings per handler class.
// It is safe for concurrent use; entries live for the process
// lifetime and are never removed.
type Registry struct {
	mu      sync.RWMutex
	entries map[ClassKey]*classEntry
	order   []ClassKey
}

// classEntry keeps the methods of one class in declaration order.
type classEntry struct {
	methods []*MethodBinding
}

func (e *classEntry) method(name string) *MethodBinding {
	for _, m := range e.methods {
		if m.Method == name {
			return m
		}
	}
	m := &MethodBinding{Method: name}
	e.methods = append(e.methods, m)
	return m
}

// NewRegistry creates an empty registry. Most callers use the
// package-level default; a dedicated registry isolates tests and
// multi-tenant hosts.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[ClassKey]*classEntry),
	}
}

// Upsert folds one declaration into the registry.
//
// The MethodBinding for (key, method) is created on first use. If eb
// is non-nil its component names are merged into the existing binding
// of the same kind, or the binding is appended if the kind is new. If
// modes is non-empty it is unioned into the method's mode filter.
// Either part may be omitted. Upsert is idempotent and
// order-independent: any permutation of the same calls produces the
// same final state.
func (r *Registry) Upsert(key ClassKey, method string, eb *EventBinding, modes []xrm.FormMode) {
	if key == nil || method == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entries[key]
	if entry == nil {
		entry = &classEntry{}
		r.entries[key] = entry
		r.order = append(r.order, key)
	}

	mb := entry.method(method)

	if eb != nil {
		merged := false
		for i := range mb.Bindings {
			if mb.Bindings[i].Kind == eb.Kind {
				mb.Bindings[i].merge(eb.Components)
				merged = true
				break
			}
		}
		if !merged {
			nb := EventBinding{Kind: eb.Kind}
			nb.merge(eb.Components)
			mb.Bindings = append(mb.Bindings, nb)
		}
	}

	for _, mode := range modes {
		if !contains(mb.Modes, mode) {
			mb.Modes = append(mb.Modes, mode)
		}
	}
}

// Get returns the accumulated method bindings for key, in declaration
// order. Unknown keys yield an empty slice, never an error. The result
// is a deep copy; mutating it does not affect the registry.
func (r *Registry) Get(key ClassKey) []MethodBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry := r.entries[key]
	if entry == nil {
		return nil
	}

	out := make([]MethodBinding, len(entry.methods))
	for i, m := range entry.methods {
		out[i] = m.clone()
	}
	return out
}

// Classes returns every class key with at least one declaration, in
// first-declaration order.
func (r *Registry) Classes() []ClassKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return nil
	}
	out := make([]ClassKey, len(r.order))
	copy(out, r.order)
	return out
}

// defaultRegistry mirrors the original's module-level singleton:
// populated while handler packages initialize, read at form load.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Upsert folds a declaration into the process-wide registry.
func Upsert(key ClassKey, method string, eb *EventBinding, modes []xrm.FormMode) {
	defaultRegistry.Upsert(key, method, eb, modes)
}

// Get reads the process-wide registry.
func Get(key ClassKey) []MethodBinding {
	return defaultRegistry.Get(key)
}
