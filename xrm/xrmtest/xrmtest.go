// Package xrmtest is an in-memory form graph for tests and demos.
//
// A Form records every subscription made against it and exposes Fire
// helpers that synthesize event contexts the way the host would,
// including event-source attribution for component events.
package xrmtest

import (
	"errors"

	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// ErrNoForm is returned when a context was built without a form.
var ErrNoForm = errors.New("xrmtest: no form context available")

// Form is a scripted xrm.FormContext.
type Form struct {
	// FormMode is what Mode reports. Mutable between fires.
	FormMode xrm.FormMode

	// ContextErr, when set, makes contexts built from this form fail
	// to yield a form context.
	ContextErr error

	// Recorded form-level subscriptions, one slice per global event.
	LoadSubs             []xrm.Callback
	DataLoadSubs         []xrm.Callback
	LoadedSubs           []xrm.Callback
	SaveSubs             []xrm.Callback
	PostSaveSubs         []xrm.Callback
	PreProcessStatusSubs []xrm.Callback
	ProcessStatusSubs    []xrm.Callback
	PreStageSubs         []xrm.Callback
	StageChangeSubs      []xrm.Callback
	StageSelectedSubs    []xrm.Callback

	attrs map[string]xrm.Component
	tabs  map[string]xrm.Component
	ctrls map[string]xrm.Component
}

// NewForm creates an empty form in the given mode.
func NewForm(mode xrm.FormMode) *Form {
	return &Form{
		FormMode: mode,
		attrs:    make(map[string]xrm.Component),
		tabs:     make(map[string]xrm.Component),
		ctrls:    make(map[string]xrm.Component),
	}
}

// Mode implements xrm.FormContext.
func (f *Form) Mode() xrm.FormMode { return f.FormMode }

func resolve(table map[string]xrm.Component, names []string) []xrm.Component {
	var out []xrm.Component
	for _, name := range names {
		if c, ok := table[name]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Attributes implements xrm.FormContext.
func (f *Form) Attributes(names ...string) []xrm.Component { return resolve(f.attrs, names) }

// Tabs implements xrm.FormContext.
func (f *Form) Tabs(names ...string) []xrm.Component { return resolve(f.tabs, names) }

// Controls implements xrm.FormContext.
func (f *Form) Controls(names ...string) []xrm.Component { return resolve(f.ctrls, names) }

// Form-level subscription points.
func (f *Form) AddOnLoad(cb xrm.Callback)     { f.LoadSubs = append(f.LoadSubs, cb) }
func (f *Form) AddOnDataLoad(cb xrm.Callback) { f.DataLoadSubs = append(f.DataLoadSubs, cb) }
func (f *Form) AddOnLoaded(cb xrm.Callback)   { f.LoadedSubs = append(f.LoadedSubs, cb) }
func (f *Form) AddOnSave(cb xrm.Callback)     { f.SaveSubs = append(f.SaveSubs, cb) }
func (f *Form) AddOnPostSave(cb xrm.Callback) { f.PostSaveSubs = append(f.PostSaveSubs, cb) }
func (f *Form) AddOnPreProcessStatusChange(cb xrm.Callback) {
	f.PreProcessStatusSubs = append(f.PreProcessStatusSubs, cb)
}
func (f *Form) AddOnProcessStatusChange(cb xrm.Callback) {
	f.ProcessStatusSubs = append(f.ProcessStatusSubs, cb)
}
func (f *Form) AddOnPreStageChange(cb xrm.Callback) { f.PreStageSubs = append(f.PreStageSubs, cb) }
func (f *Form) AddOnStageChange(cb xrm.Callback)    { f.StageChangeSubs = append(f.StageChangeSubs, cb) }
func (f *Form) AddOnStageSelected(cb xrm.Callback) {
	f.StageSelectedSubs = append(f.StageSelectedSubs, cb)
}

// Context builds a form-level event context.
func (f *Form) Context() *Context {
	return &Context{form: f, err: f.ContextErr}
}

// ContextFrom builds an event context originating from src.
func (f *Form) ContextFrom(src xrm.Component) *Context {
	return &Context{form: f, source: src, err: f.ContextErr}
}

// FireLoad invokes every form load subscriber.
func (f *Form) FireLoad() { f.fire(f.LoadSubs) }

// FireSave invokes every save subscriber.
func (f *Form) FireSave() { f.fire(f.SaveSubs) }

// FireStageChange invokes every stage-change subscriber.
func (f *Form) FireStageChange() { f.fire(f.StageChangeSubs) }

func (f *Form) fire(subs []xrm.Callback) {
	ctx := f.Context()
	for _, cb := range subs {
		cb(ctx)
	}
}

// Context is a scripted xrm.EventContext.
type Context struct {
	form   *Form
	source xrm.Component
	err    error
}

// FormContext implements xrm.EventContext.
func (c *Context) FormContext() (xrm.FormContext, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.form == nil {
		return nil, ErrNoForm
	}
	return c.form, nil
}

// EventSource implements xrm.EventContext.
func (c *Context) EventSource() xrm.Component { return c.source }

// Compile-time context checks.
var (
	_ xrm.FormContext  = (*Form)(nil)
	_ xrm.EventContext = (*Context)(nil)
)
