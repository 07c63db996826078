package xrmtest

import "github.com/SofianeGUEZZAR/d365-event-decorators/xrm"

// Attribute is a scripted form attribute.
type Attribute struct {
	form *Form
	name string

	ChangeSubs []xrm.Callback
}

// AddAttribute adds an attribute to the form and returns it.
func (f *Form) AddAttribute(name string) *Attribute {
	a := &Attribute{form: f, name: name}
	f.attrs[name] = a
	return a
}

func (a *Attribute) Name() string { return a.name }

// AddOnChange implements xrm.Attribute.
func (a *Attribute) AddOnChange(cb xrm.Callback) { a.ChangeSubs = append(a.ChangeSubs, cb) }

// FireChange delivers a change event originating from the attribute.
func (a *Attribute) FireChange() {
	ctx := a.form.ContextFrom(a)
	for _, cb := range a.ChangeSubs {
		cb(ctx)
	}
}

// Tab is a scripted form tab.
type Tab struct {
	form  *Form
	name  string
	state xrm.DisplayState

	StateSubs []xrm.Callback
}

// AddTab adds a tab to the form and returns it.
func (f *Form) AddTab(name string, state xrm.DisplayState) *Tab {
	t := &Tab{form: f, name: name, state: state}
	f.tabs[name] = t
	return t
}

func (t *Tab) Name() string { return t.name }

// DisplayState implements xrm.Tab.
func (t *Tab) DisplayState() xrm.DisplayState { return t.state }

// AddTabStateChange implements xrm.Tab.
func (t *Tab) AddTabStateChange(cb xrm.Callback) { t.StateSubs = append(t.StateSubs, cb) }

// SetDisplayState changes the tab state and delivers the combined
// state-change notification, the only one the host exposes.
func (t *Tab) SetDisplayState(state xrm.DisplayState) {
	t.state = state
	ctx := t.form.ContextFrom(t)
	for _, cb := range t.StateSubs {
		cb(ctx)
	}
}

// Grid is a scripted subgrid control.
type Grid struct {
	form *Form
	name string

	LoadSubs         []xrm.Callback
	RecordSelectSubs []xrm.Callback
}

// AddGrid adds a subgrid control to the form and returns it.
func (f *Form) AddGrid(name string) *Grid {
	g := &Grid{form: f, name: name}
	f.ctrls[name] = g
	return g
}

func (g *Grid) Name() string { return g.name }

// AddOnLoad implements xrm.GridControl.
func (g *Grid) AddOnLoad(cb xrm.Callback) { g.LoadSubs = append(g.LoadSubs, cb) }

// AddOnRecordSelect implements xrm.GridControl.
func (g *Grid) AddOnRecordSelect(cb xrm.Callback) {
	g.RecordSelectSubs = append(g.RecordSelectSubs, cb)
}

// FireLoad delivers a grid load event.
func (g *Grid) FireLoad() {
	ctx := g.form.ContextFrom(g)
	for _, cb := range g.LoadSubs {
		cb(ctx)
	}
}

// Iframe is a scripted embedded frame control.
type Iframe struct {
	form *Form
	name string

	ReadySubs []xrm.Callback
}

// AddIframe adds a frame control to the form and returns it.
func (f *Form) AddIframe(name string) *Iframe {
	i := &Iframe{form: f, name: name}
	f.ctrls[name] = i
	return i
}

func (i *Iframe) Name() string { return i.name }

// AddOnReadyStateComplete implements xrm.IframeControl.
func (i *Iframe) AddOnReadyStateComplete(cb xrm.Callback) { i.ReadySubs = append(i.ReadySubs, cb) }

// FireReady delivers a ready-state event.
func (i *Iframe) FireReady() {
	ctx := i.form.ContextFrom(i)
	for _, cb := range i.ReadySubs {
		cb(ctx)
	}
}

// Lookup is a scripted lookup control.
type Lookup struct {
	form *Form
	name string

	TagClickSubs  []xrm.Callback
	PreSearchSubs []xrm.Callback
}

// AddLookup adds a lookup control to the form and returns it.
func (f *Form) AddLookup(name string) *Lookup {
	l := &Lookup{form: f, name: name}
	f.ctrls[name] = l
	return l
}

func (l *Lookup) Name() string { return l.name }

// AddOnLookupTagClick implements xrm.LookupControl.
func (l *Lookup) AddOnLookupTagClick(cb xrm.Callback) { l.TagClickSubs = append(l.TagClickSubs, cb) }

// AddPreSearch implements xrm.LookupControl.
func (l *Lookup) AddPreSearch(cb xrm.Callback) { l.PreSearchSubs = append(l.PreSearchSubs, cb) }

// FirePreSearch delivers a pre-search event.
func (l *Lookup) FirePreSearch() {
	ctx := l.form.ContextFrom(l)
	for _, cb := range l.PreSearchSubs {
		cb(ctx)
	}
}

// OutputControl is a scripted custom control with output properties.
type OutputControl struct {
	form *Form
	name string

	OutputSubs []xrm.Callback
}

// AddOutputControl adds a custom control to the form and returns it.
func (f *Form) AddOutputControl(name string) *OutputControl {
	o := &OutputControl{form: f, name: name}
	f.ctrls[name] = o
	return o
}

func (o *OutputControl) Name() string { return o.name }

// AddOnOutputChange implements xrm.OutputControl.
func (o *OutputControl) AddOnOutputChange(cb xrm.Callback) { o.OutputSubs = append(o.OutputSubs, cb) }

// FireOutputChange delivers an output-change event.
func (o *OutputControl) FireOutputChange() {
	ctx := o.form.ContextFrom(o)
	for _, cb := range o.OutputSubs {
		cb(ctx)
	}
}

// KBSearch is a scripted knowledge-base search widget.
type KBSearch struct {
	form *Form
	name string

	ResultOpenedSubs []xrm.Callback
	SelectionSubs    []xrm.Callback
	PostSearchSubs   []xrm.Callback
}

// AddKBSearch adds a knowledge-base search widget to the form and
// returns it.
func (f *Form) AddKBSearch(name string) *KBSearch {
	k := &KBSearch{form: f, name: name}
	f.ctrls[name] = k
	return k
}

func (k *KBSearch) Name() string { return k.name }

// AddOnResultOpened implements xrm.KBSearchControl.
func (k *KBSearch) AddOnResultOpened(cb xrm.Callback) {
	k.ResultOpenedSubs = append(k.ResultOpenedSubs, cb)
}

// AddOnSelection implements xrm.KBSearchControl.
func (k *KBSearch) AddOnSelection(cb xrm.Callback) { k.SelectionSubs = append(k.SelectionSubs, cb) }

// AddOnPostSearch implements xrm.KBSearchControl.
func (k *KBSearch) AddOnPostSearch(cb xrm.Callback) {
	k.PostSearchSubs = append(k.PostSearchSubs, cb)
}

// FireSelection delivers a selection event.
func (k *KBSearch) FireSelection() {
	ctx := k.form.ContextFrom(k)
	for _, cb := range k.SelectionSubs {
		cb(ctx)
	}
}

// PlainControl is a control with a name and no event capabilities,
// for exercising the capability filters.
type PlainControl struct {
	name string
}

// AddPlainControl adds a capability-less control to the form.
func (f *Form) AddPlainControl(name string) *PlainControl {
	p := &PlainControl{name: name}
	f.ctrls[name] = p
	return p
}

func (p *PlainControl) Name() string { return p.name }

// Compile-time capability checks.
var (
	_ xrm.Attribute       = (*Attribute)(nil)
	_ xrm.Tab             = (*Tab)(nil)
	_ xrm.GridControl     = (*Grid)(nil)
	_ xrm.IframeControl   = (*Iframe)(nil)
	_ xrm.LookupControl   = (*Lookup)(nil)
	_ xrm.OutputControl   = (*OutputControl)(nil)
	_ xrm.KBSearchControl = (*KBSearch)(nil)
	_ xrm.Component       = (*PlainControl)(nil)
)
