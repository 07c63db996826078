package xrm

// Component is any named object in the form graph.
type Component interface {
	Name() string
}

// Attribute is a form attribute (field data). Satisfying this
// interface is what qualifies a component for attribute-change
// bindings.
type Attribute interface {
	Component

	// AddOnChange registers cb for value changes of the attribute.
	AddOnChange(cb Callback)
}

// Tab is a form tab. Tab-scoped bindings (state change, expand,
// collapse) require this capability.
type Tab interface {
	Component

	// DisplayState reports whether the tab is currently expanded or
	// collapsed.
	DisplayState() DisplayState

	// AddTabStateChange registers cb for expand/collapse transitions.
	// The host exposes only this combined notification; there is no
	// expand-only or collapse-only subscription.
	AddTabStateChange(cb Callback)
}

// GridControl is an embedded subgrid.
type GridControl interface {
	Component

	// AddOnLoad registers cb for grid data (re)loads.
	AddOnLoad(cb Callback)

	// AddOnRecordSelect registers cb for row selection.
	AddOnRecordSelect(cb Callback)
}

// IframeControl is an embedded frame.
type IframeControl interface {
	Component

	// AddOnReadyStateComplete registers cb for the frame's content
	// becoming ready.
	AddOnReadyStateComplete(cb Callback)
}

// LookupControl is a lookup field control.
type LookupControl interface {
	Component

	// AddOnLookupTagClick registers cb for clicks on a resolved tag.
	AddOnLookupTagClick(cb Callback)

	// AddPreSearch registers cb invoked before the lookup search runs.
	AddPreSearch(cb Callback)
}

// OutputControl is a custom control exposing output properties.
type OutputControl interface {
	Component

	// AddOnOutputChange registers cb for output property changes.
	AddOnOutputChange(cb Callback)
}

// KBSearchControl is a knowledge-base search widget.
type KBSearchControl interface {
	Component

	// AddOnResultOpened registers cb for a result being opened.
	AddOnResultOpened(cb Callback)

	// AddOnSelection registers cb for a result being selected.
	AddOnSelection(cb Callback)

	// AddOnPostSearch registers cb invoked after a search completes.
	AddOnPostSearch(cb Callback)
}
