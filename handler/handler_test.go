package handler

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/SofianeGUEZZAR/d365-event-decorators/binding"
	"github.com/SofianeGUEZZAR/d365-event-decorators/diag"
	"github.com/SofianeGUEZZAR/d365-event-decorators/dispatch"
	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm/xrmtest"
)

type accountForm struct {
	Base

	saves int
}

func (h *accountForm) OnSave(_ xrm.EventContext) { h.saves++ }

func newIsolated(t *testing.T) (*binding.Registry, *dispatch.Dispatcher) {
	t.Helper()
	r := binding.NewRegistry()
	d := dispatch.New(dispatch.WithRegistry(r), dispatch.WithLogger(zerolog.Nop()))
	return r, d
}

func TestInitBindsAndRecords(t *testing.T) {
	r, d := newIsolated(t)
	binding.ForIn[*accountForm](r).Method("OnSave").On(event.Save)

	form := xrmtest.NewForm(xrm.ModeCreate)
	timings := diag.NewTimings()
	h := &accountForm{}

	err := Init(h, form.Context(), WithDispatcher(d), WithTimings(timings))
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	if got := h.FormMode(); got != xrm.ModeCreate {
		t.Errorf("FormMode() = %s, want create", got)
	}
	if len(form.SaveSubs) != 1 {
		t.Errorf("form has %d save subscriptions, want 1", len(form.SaveSubs))
	}
	if timings.Count() != 1 {
		t.Errorf("timings recorded %d samples, want 1", timings.Count())
	}
	if got := timings.Total(); got != h.BindDuration() {
		t.Errorf("collector total %s != handler bind duration %s", got, h.BindDuration())
	}

	form.FireSave()
	if h.saves != 1 {
		t.Errorf("handler invoked %d times, want 1", h.saves)
	}
}

func TestInitPropagatesContextFailure(t *testing.T) {
	_, d := newIsolated(t)

	hostErr := errors.New("no form context")
	form := xrmtest.NewForm(xrm.ModeUpdate)
	form.ContextErr = hostErr

	err := Init(&accountForm{}, form.Context(), WithDispatcher(d))
	if !errors.Is(err, hostErr) {
		t.Fatalf("Init() error = %v, want wrapped host error", err)
	}
}

func TestInitWithoutBaseEmbedding(t *testing.T) {
	// Handlers that skip the shim's Base still bind; they just lose
	// the introspection views.
	type bare struct{ n int }

	_, d := newIsolated(t)
	form := xrmtest.NewForm(xrm.ModeUpdate)

	if err := Init(&bare{}, form.Context(), WithDispatcher(d), WithTimings(diag.NewTimings())); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
}

func TestBindingsView(t *testing.T) {
	// Bindings reads the process-wide registry; use a throwaway type
	// so other tests stay unaffected.
	type viewForm struct{ Base }

	binding.For[*viewForm]().Method("OnLoad").On(event.Load)

	got := Bindings(&viewForm{})
	if len(got) != 1 || got[0].Method != "OnLoad" {
		t.Fatalf("Bindings() = %+v, want one OnLoad entry", got)
	}
}
