package dispatch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SofianeGUEZZAR/d365-event-decorators/binding"
	"github.com/SofianeGUEZZAR/d365-event-decorators/diag"
	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/internal/logging"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// Dispatcher resolves declared bindings against live forms.
// One dispatcher serves any number of bind passes; its counters
// accumulate across them.
type Dispatcher struct {
	registry    *binding.Registry
	warnings    *diag.Aggregator
	logger      zerolog.Logger
	warnMissing bool

	stats statsCounters
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRegistry reads bindings from r instead of the process-wide
// registry.
func WithRegistry(r *binding.Registry) Option {
	return func(d *Dispatcher) { d.registry = r }
}

// WithWarnings queues diagnostics into a instead of a private
// aggregator.
func WithWarnings(a *diag.Aggregator) Option {
	return func(d *Dispatcher) { d.warnings = a }
}

// WithLogger sets the dispatcher's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithMissingMethodWarnings makes declared-but-undefined methods queue
// a warning instead of being skipped silently. Off by default to match
// the host runtime's behavior; the skip is always counted either way.
func WithMissingMethodWarnings(on bool) Option {
	return func(d *Dispatcher) { d.warnMissing = on }
}

// New creates a dispatcher bound to the process-wide registry.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: binding.Default(),
		logger:   logging.Component("dispatch"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.warnings == nil {
		d.warnings = diag.NewAggregator(d.logger)
	}
	return d
}

// Apply binds every declaration of instance's class to the live form
// behind ectx, then flushes queued diagnostics.
//
// Declarations that cannot be satisfied (mode filtered out, method not
// defined, component name absent from the form) are skipped, never
// fatal. The only error is ectx failing to yield a form context, which
// is the host's failure to surface, not this library's.
func (d *Dispatcher) Apply(instance any, ectx xrm.EventContext, mode xrm.FormMode) error {
	methods := d.registry.Get(binding.KeyOf(instance))
	if len(methods) == 0 {
		return nil
	}

	for _, mb := range methods {
		if len(mb.Modes) > 0 && len(mb.Bindings) == 0 {
			d.warnings.Warnf("method %q has a mode filter but no events", mb.Method)
		}
	}

	fc, err := ectx.FormContext()
	if err != nil {
		return fmt.Errorf("resolving form context: %w", err)
	}

	logger := d.logger.With().
		Str("run_id", uuid.NewString()).
		Str("class", binding.KeyOf(instance).String()).
		Stringer("mode", mode).
		Logger()

	rv := reflect.ValueOf(instance)
	for _, kind := range event.Kinds() {
		for i := range methods {
			mb := &methods[i]
			eb, ok := mb.Binding(kind)
			if !ok {
				continue
			}
			if !mb.AllowsMode(mode) {
				d.stats.skippedMode.Add(1)
				continue
			}

			cb, ok := callbackFor(rv, mb.Method)
			if !ok {
				d.stats.missingMethod.Add(1)
				if d.warnMissing {
					d.warnings.Warnf("method %q is declared but not defined with signature func(xrm.EventContext)", mb.Method)
				}
				continue
			}

			if kind.Scope() == event.Global {
				if registerGlobal(fc, kind, cb) {
					d.stats.registered.Add(1)
					logger.Debug().Stringer("kind", kind).Str("method", mb.Method).Msg("registered form listener")
				}
				continue
			}

			d.bindComponents(logger, fc, mb, eb, mode, cb)
		}
	}

	flushed := d.warnings.Flush()
	logger.Debug().Int("warnings", len(flushed)).Msg("bind pass complete")
	return nil
}

// bindComponents resolves one component binding and registers cb
// against every resolved, capability-matching component. Names that do
// not resolve queue a single grouped warning for the whole binding.
func (d *Dispatcher) bindComponents(logger zerolog.Logger, fc xrm.FormContext, mb *binding.MethodBinding, eb binding.EventBinding, mode xrm.FormMode, cb xrm.Callback) {
	fam, ok := familyFor(eb.Kind)
	if !ok {
		return
	}
	if fam.wrap != nil {
		cb = fam.wrap(cb)
	}

	found := make(map[string]bool, len(eb.Components))
	for _, c := range fam.resolve(fc, eb.Components) {
		if c == nil || !fam.keep(c) {
			continue
		}
		fam.register(c, cb)
		found[c.Name()] = true
		d.stats.registered.Add(1)
	}

	var unfound []string
	for _, name := range eb.Components {
		if !found[name] {
			unfound = append(unfound, name)
		}
	}
	if len(unfound) > 0 {
		d.stats.unresolved.Add(int64(len(unfound)))
		d.warnings.Warnf("method %q: %s components not found in %s mode: %s",
			mb.Method, eb.Kind, mode, strings.Join(unfound, ", "))
	}

	logger.Debug().
		Stringer("kind", eb.Kind).
		Str("method", mb.Method).
		Int("resolved", len(found)).
		Int("unresolved", len(unfound)).
		Msg("registered component listeners")
}

// callbackFor binds method name on rv to a Callback. Methods that do
// not exist, or exist with another signature, yield false; the
// dispatcher treats both as a skip.
func callbackFor(rv reflect.Value, name string) (xrm.Callback, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	fn, ok := m.Interface().(func(xrm.EventContext))
	if !ok {
		return nil, false
	}
	return xrm.Callback(fn), true
}
