package dispatch

import (
	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

// family is the per-kind parameter set for component binding: how to
// resolve declared names, which capability a resolved component must
// have, how to attach the callback, and an optional callback wrapper
// for synthesized kinds.
type family struct {
	resolve  func(fc xrm.FormContext, names []string) []xrm.Component
	keep     func(c xrm.Component) bool
	register func(c xrm.Component, cb xrm.Callback)
	wrap     func(cb xrm.Callback) xrm.Callback
}

func attributes(fc xrm.FormContext, names []string) []xrm.Component { return fc.Attributes(names...) }
func tabs(fc xrm.FormContext, names []string) []xrm.Component       { return fc.Tabs(names...) }
func controls(fc xrm.FormContext, names []string) []xrm.Component   { return fc.Controls(names...) }

func is[T xrm.Component](c xrm.Component) bool {
	_, ok := c.(T)
	return ok
}

// stateGate forwards cb only when the originating tab of the incoming
// event currently shows the wanted display state. Expand and collapse
// are synthesized this way because the host exposes a single combined
// state-change notification.
func stateGate(want xrm.DisplayState) func(xrm.Callback) xrm.Callback {
	return func(cb xrm.Callback) xrm.Callback {
		return func(ctx xrm.EventContext) {
			tab, ok := ctx.EventSource().(xrm.Tab)
			if !ok {
				return
			}
			if tab.DisplayState() == want {
				cb(ctx)
			}
		}
	}
}

// familyFor returns the binding parameters for a component kind.
func familyFor(kind event.Kind) (family, bool) {
	switch kind {
	case event.AttributeChange:
		return family{
			resolve:  attributes,
			keep:     is[xrm.Attribute],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.Attribute).AddOnChange(cb) },
		}, true
	case event.TabStateChange:
		return family{
			resolve:  tabs,
			keep:     is[xrm.Tab],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.Tab).AddTabStateChange(cb) },
		}, true
	case event.TabExpand:
		return family{
			resolve:  tabs,
			keep:     is[xrm.Tab],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.Tab).AddTabStateChange(cb) },
			wrap:     stateGate(xrm.StateExpanded),
		}, true
	case event.TabCollapse:
		return family{
			resolve:  tabs,
			keep:     is[xrm.Tab],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.Tab).AddTabStateChange(cb) },
			wrap:     stateGate(xrm.StateCollapsed),
		}, true
	case event.LookupTagClick:
		return family{
			resolve:  controls,
			keep:     is[xrm.LookupControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.LookupControl).AddOnLookupTagClick(cb) },
		}, true
	case event.PreSearch:
		return family{
			resolve:  controls,
			keep:     is[xrm.LookupControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.LookupControl).AddPreSearch(cb) },
		}, true
	case event.SubgridLoad:
		return family{
			resolve:  controls,
			keep:     is[xrm.GridControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.GridControl).AddOnLoad(cb) },
		}, true
	case event.SubgridRecordSelect:
		return family{
			resolve:  controls,
			keep:     is[xrm.GridControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.GridControl).AddOnRecordSelect(cb) },
		}, true
	case event.IframeReady:
		return family{
			resolve:  controls,
			keep:     is[xrm.IframeControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.IframeControl).AddOnReadyStateComplete(cb) },
		}, true
	case event.ControlOutputChange:
		return family{
			resolve:  controls,
			keep:     is[xrm.OutputControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.OutputControl).AddOnOutputChange(cb) },
		}, true
	case event.KBResultOpened:
		return family{
			resolve:  controls,
			keep:     is[xrm.KBSearchControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.KBSearchControl).AddOnResultOpened(cb) },
		}, true
	case event.KBSelection:
		return family{
			resolve:  controls,
			keep:     is[xrm.KBSearchControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.KBSearchControl).AddOnSelection(cb) },
		}, true
	case event.KBPostSearch:
		return family{
			resolve:  controls,
			keep:     is[xrm.KBSearchControl],
			register: func(c xrm.Component, cb xrm.Callback) { c.(xrm.KBSearchControl).AddOnPostSearch(cb) },
		}, true
	default:
		return family{}, false
	}
}

// registerGlobal attaches cb to the form-level subscription point for
// a global kind. Returns false for kinds with no form-level entry.
func registerGlobal(fc xrm.FormContext, kind event.Kind, cb xrm.Callback) bool {
	switch kind {
	case event.Load:
		fc.AddOnLoad(cb)
	case event.DataLoad:
		fc.AddOnDataLoad(cb)
	case event.Loaded:
		fc.AddOnLoaded(cb)
	case event.Save:
		fc.AddOnSave(cb)
	case event.PostSave:
		fc.AddOnPostSave(cb)
	case event.PreProcessStatusChange:
		fc.AddOnPreProcessStatusChange(cb)
	case event.ProcessStatusChange:
		fc.AddOnProcessStatusChange(cb)
	case event.PreStageChange:
		fc.AddOnPreStageChange(cb)
	case event.StageChange:
		fc.AddOnStageChange(cb)
	case event.StageSelected:
		fc.AddOnStageSelected(cb)
	default:
		return false
	}
	return true
}
