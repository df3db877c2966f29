package admonition

import "fmt"

// Form is the syntactic marker of an admonition.
type Form int

// Admonition forms, one per marker.
const (
	FormStandard Form = iota
	FormCollapsible
	FormCollapsibleOpen
)

// Markers as they appear in source text.
const (
	MarkerStandard        = "!!!"
	MarkerCollapsible     = "???"
	MarkerCollapsibleOpen = "???+"
)

// ParseForm maps a marker to its Form.
func ParseForm(marker string) (Form, error) {
	switch marker {
	case MarkerStandard:
		return FormStandard, nil
	case MarkerCollapsible:
		return FormCollapsible, nil
	case MarkerCollapsibleOpen:
		return FormCollapsibleOpen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownForm, marker)
	}
}

// Marker returns the source marker for the form.
func (f Form) Marker() string {
	switch f {
	case FormCollapsible:
		return MarkerCollapsible
	case FormCollapsibleOpen:
		return MarkerCollapsibleOpen
	default:
		return MarkerStandard
	}
}

// String returns a human-readable form name.
func (f Form) String() string {
	switch f {
	case FormStandard:
		return "standard"
	case FormCollapsible:
		return "collapsible"
	case FormCollapsibleOpen:
		return "collapsible-open"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Block is a parsed admonition ready for rendering.
// It lives for the duration of a single handler invocation.
type Block struct {
	Form Form
	// Type is lowercase and non-empty for blocks built from a Match.
	Type string
	// Title is meaningful only when HasTitle is true.
	Title    string
	HasTitle bool
	// Lines never ends with an empty string.
	Lines []string
}

// Header returns the title when one was given, otherwise the type.
func (b Block) Header() string {
	if b.HasTitle && b.Title != "" {
		return b.Title
	}
	return b.Type
}
