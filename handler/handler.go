// Package handler is the lifecycle shim form handlers embed.
//
// A handler type embeds Base and calls Init from whatever the host
// invokes at form load. Init derives the current form mode, runs one
// dispatch pass over the handler's declared bindings, and records how
// long the pass took:
//
//	type ContactMain struct {
//		handler.Base
//	}
//
//	func NewContactMain(ctx xrm.EventContext) (*ContactMain, error) {
//		h := &ContactMain{}
//		if err := handler.Init(h, ctx); err != nil {
//			return nil, err
//		}
//		return h, nil
//	}
//
// Init runs once per handler construction, and construction happens
// once per form load; nothing here is re-entrant.
package handler

import (
	"fmt"
	"time"

	"github.com/SofianeGUEZZAR/d365-event-decorators/binding"
	"github.com/SofianeGUEZZAR/d365-event-decorators/diag"
	"github.com/SofianeGUEZZAR/d365-event-decorators/dispatch"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// Base carries the per-form state the shim records during Init.
// Embed it by value; its methods are read-only views.
type Base struct {
	mode     xrm.FormMode
	bindTime time.Duration
}

// FormMode returns the mode the form was in when Init ran.
func (b *Base) FormMode() xrm.FormMode { return b.mode }

// BindDuration returns how long this handler's bind pass took.
func (b *Base) BindDuration() time.Duration { return b.bindTime }

func (b *Base) record(mode xrm.FormMode, d time.Duration) {
	b.mode = mode
	b.bindTime = d
}

// recorder is satisfied by any handler embedding Base.
type recorder interface {
	record(mode xrm.FormMode, d time.Duration)
}

// Option configures Init.
type Option func(*settings)

type settings struct {
	dispatcher *dispatch.Dispatcher
	timings    *diag.Timings
}

// WithDispatcher uses d instead of a fresh default dispatcher.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(s *settings) { s.dispatcher = d }
}

// WithTimings records the bind duration into t instead of the
// process-wide collector.
func WithTimings(t *diag.Timings) Option {
	return func(s *settings) { s.timings = t }
}

// Init binds every declaration of instance's class to the live form
// behind ectx. The only error is the host failing to yield a form
// context; everything declarative degrades to diagnostics.
func Init(instance any, ectx xrm.EventContext, opts ...Option) error {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.dispatcher == nil {
		s.dispatcher = dispatch.New()
	}
	if s.timings == nil {
		s.timings = diag.DefaultTimings()
	}

	fc, err := ectx.FormContext()
	if err != nil {
		return fmt.Errorf("deriving form mode: %w", err)
	}
	mode := fc.Mode()

	start := time.Now()
	err = s.dispatcher.Apply(instance, ectx, mode)
	elapsed := time.Since(start)

	s.timings.Record(elapsed)
	if r, ok := instance.(recorder); ok {
		r.record(mode, elapsed)
	}
	return err
}

// Bindings returns the declared method bindings for instance's class,
// as a read-only copy.
func Bindings(instance any) []binding.MethodBinding {
	return binding.Get(binding.KeyOf(instance))
}

// TotalBindTime returns the sum of all bind-pass durations recorded in
// the process-wide collector.
func TotalBindTime() time.Duration {
	return diag.DefaultTimings().Total()
}
