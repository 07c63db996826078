package xrm

// FormMode is the state of the record-editing surface, as reported by
// the host form. Numeric values match the host's form-type codes.
type FormMode int

const (
	// ModeUndefined is reported when the host cannot determine the form type.
	ModeUndefined FormMode = 0

	// ModeCreate is a form for a record that does not exist yet.
	ModeCreate FormMode = 1

	// ModeUpdate is a form editing an existing record.
	ModeUpdate FormMode = 2

	// ModeReadOnly is a non-editable view of an existing record.
	ModeReadOnly FormMode = 3

	// ModeDisabled is a form whose controls are all disabled.
	ModeDisabled FormMode = 4

	// ModeQuickCreate is the condensed create dialog.
	ModeQuickCreate FormMode = 5

	// ModeBulkEdit is a form editing several records at once.
	ModeBulkEdit FormMode = 6

	// ModeReadOptimized is the legacy read-optimized rendering.
	ModeReadOptimized FormMode = 11
)

// String returns a human-readable mode name.
func (m FormMode) String() string {
	switch m {
	case ModeUndefined:
		return "undefined"
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	case ModeReadOnly:
		return "readonly"
	case ModeDisabled:
		return "disabled"
	case ModeQuickCreate:
		return "quickcreate"
	case ModeBulkEdit:
		return "bulkedit"
	case ModeReadOptimized:
		return "readoptimized"
	default:
		return "unknown"
	}
}

// ParseFormMode parses a mode name as produced by String.
// Unknown names parse as ModeUndefined.
func ParseFormMode(s string) FormMode {
	switch s {
	case "create":
		return ModeCreate
	case "update":
		return ModeUpdate
	case "readonly":
		return ModeReadOnly
	case "disabled":
		return ModeDisabled
	case "quickcreate":
		return ModeQuickCreate
	case "bulkedit":
		return ModeBulkEdit
	case "readoptimized":
		return ModeReadOptimized
	default:
		return ModeUndefined
	}
}

// DisplayState is the visual state of a tab.
type DisplayState int

const (
	// StateExpanded means the tab body is visible.
	StateExpanded DisplayState = iota

	// StateCollapsed means the tab body is hidden.
	StateCollapsed
)

// String returns the display state name.
func (s DisplayState) String() string {
	switch s {
	case StateExpanded:
		return "expanded"
	case StateCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}
