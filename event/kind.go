package event

// Kind identifies one form lifecycle event.
type Kind int

const (
	// Load fires once when the form loads.
	Load Kind = iota

	// DataLoad fires when form data loads or reloads.
	DataLoad

	// Loaded fires after the form finished loading.
	Loaded

	// Save fires when a save is requested, before it runs.
	Save

	// PostSave fires after a save attempt completes.
	PostSave

	// AttributeChange fires when a named attribute's value changes.
	AttributeChange

	// LookupTagClick fires when a tag in a named lookup is clicked.
	LookupTagClick

	// PreSearch fires before a named lookup executes its search.
	PreSearch

	// TabStateChange fires when a named tab expands or collapses.
	TabStateChange

	// TabExpand fires when a named tab transitions to expanded.
	// Synthesized from TabStateChange; the host has no dedicated
	// subscription for it.
	TabExpand

	// TabCollapse fires when a named tab transitions to collapsed.
	// Synthesized from TabStateChange.
	TabCollapse

	// SubgridLoad fires when a named subgrid loads its rows.
	SubgridLoad

	// SubgridRecordSelect fires when a row is selected in a named subgrid.
	SubgridRecordSelect

	// IframeReady fires when a named frame's content becomes ready.
	IframeReady

	// PreProcessStatusChange fires before the process status changes.
	PreProcessStatusChange

	// ProcessStatusChange fires after the process status changed.
	ProcessStatusChange

	// PreStageChange fires before the active process stage changes.
	PreStageChange

	// StageChange fires after the active process stage changed.
	StageChange

	// StageSelected fires when a process stage is selected.
	StageSelected

	// ControlOutputChange fires when a named custom control's output
	// properties change.
	ControlOutputChange

	// KBResultOpened fires when a knowledge-base result is opened in a
	// named search widget.
	KBResultOpened

	// KBSelection fires when a knowledge-base result is selected.
	KBSelection

	// KBPostSearch fires after a knowledge-base search completes.
	KBPostSearch
)

// Scope classifies a Kind as form-level or component-scoped.
type Scope int

const (
	// Global kinds fire at the form level and take no target
	// components.
	Global Scope = iota

	// Component kinds require one or more named target components.
	Component
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case Global:
		return "global"
	case Component:
		return "component"
	default:
		return "unknown"
	}
}

// Scope reports whether k is a global or component-scoped kind.
func (k Kind) Scope() Scope {
	switch k {
	case Load, DataLoad, Loaded, Save, PostSave,
		PreProcessStatusChange, ProcessStatusChange,
		PreStageChange, StageChange, StageSelected:
		return Global
	default:
		return Component
	}
}

// String returns the stable display label for k.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindLabels) {
		return "unknown"
	}
	return kindLabels[k]
}

var kindLabels = [...]string{
	Load:                   "load",
	DataLoad:               "data-load",
	Loaded:                 "loaded",
	Save:                   "save",
	PostSave:               "post-save",
	AttributeChange:        "attribute-change",
	LookupTagClick:         "lookup-tag-click",
	PreSearch:              "pre-search",
	TabStateChange:         "tab-state-change",
	TabExpand:              "tab-expand",
	TabCollapse:            "tab-collapse",
	SubgridLoad:            "subgrid-load",
	SubgridRecordSelect:    "subgrid-record-select",
	IframeReady:            "iframe-ready",
	PreProcessStatusChange: "pre-process-status-change",
	ProcessStatusChange:    "process-status-change",
	PreStageChange:         "pre-stage-change",
	StageChange:            "stage-change",
	StageSelected:          "stage-selected",
	ControlOutputChange:    "control-output-change",
	KBResultOpened:         "kb-result-opened",
	KBSelection:            "kb-selection",
	KBPostSearch:           "kb-post-search",
}

// dispatchOrder is the fixed order the dispatcher walks kinds in,
// grouped by family: load, save, tab, attribute change, lookup,
// subgrid, iframe, process, output change, knowledge base.
var dispatchOrder = [...]Kind{
	Load, DataLoad, Loaded,
	Save, PostSave,
	TabStateChange, TabExpand, TabCollapse,
	AttributeChange,
	LookupTagClick, PreSearch,
	SubgridLoad, SubgridRecordSelect,
	IframeReady,
	PreProcessStatusChange, ProcessStatusChange,
	PreStageChange, StageChange, StageSelected,
	ControlOutputChange,
	KBResultOpened, KBSelection, KBPostSearch,
}

// Kinds returns every Kind in dispatch order.
// The returned slice is a copy; callers may modify it.
func Kinds() []Kind {
	out := make([]Kind, len(dispatchOrder))
	copy(out, dispatchOrder[:])
	return out
}
