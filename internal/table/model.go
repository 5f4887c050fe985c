package table

import (
	"fmt"

	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// Content is the abstract payload of a cell. A nil Content is empty.
type Content = ui.Renderable

// WidthKind enumerates column sizing policies.
type WidthKind int

const (
	// WidthFlex takes a weighted share of the space left after the other kinds.
	WidthFlex WidthKind = iota
	// WidthFixed is a fixed size in layout units.
	WidthFixed
	// WidthIntrinsic fits the widest content in the column.
	WidthIntrinsic
	// WidthFraction is a fraction of the total table width.
	WidthFraction
)

// String returns the configuration name of the kind.
func (k WidthKind) String() string {
	switch k {
	case WidthFixed:
		return "fixed"
	case WidthIntrinsic:
		return "intrinsic"
	case WidthFraction:
		return "fraction"
	default:
		return "flex"
	}
}

// Width is a column width strategy. Value is the flex weight, the fixed size in
// layout units or the fraction, depending on Kind. Min and Max are optional
// hints in layout units; zero means unset.
type Width struct {
	Kind  WidthKind
	Value float64
	Min   float64
	Max   float64
}

// Flex returns a flexible width with the given weight.
func Flex(weight float64) Width { return Width{Kind: WidthFlex, Value: weight} }

// Fixed returns a fixed width in layout units.
func Fixed(units float64) Width { return Width{Kind: WidthFixed, Value: units} }

// Intrinsic returns a content-fitting width.
func Intrinsic() Width { return Width{Kind: WidthIntrinsic} }

// Fraction returns a width that is a fraction of the total table width.
func Fraction(f float64) Width { return Width{Kind: WidthFraction, Value: f} }

func (w Width) String() string {
	if w.Kind == WidthIntrinsic {
		return w.Kind.String()
	}
	return fmt.Sprintf("%s(%g)", w.Kind, w.Value)
}

// Column defines one data column. Its identity is its position in
// Config.Columns.
type Column struct {
	Header Content
	// Width defaults to Flex(1) when nil.
	Width    *Width
	Sortable bool
	MinWidth float64
	MaxWidth float64

	Padding     *components.Spacing
	Alignment   *components.Alignment
	Constraints *components.Constraints

	// OnTap is invoked when the default header is tapped and no sort callback
	// claims it. A HeaderBuilder disables it.
	OnTap func()
}

// Row is one logical data row. Cells map to columns by position; short rows
// are padded with blank placeholders and cells past the last column are
// ignored.
type Row struct {
	Cells      []Content
	Decoration *lipgloss.Style
	Padding    *components.Spacing
	Alignment  *components.Alignment
	// OnTap takes precedence over Config.OnRowTap for this row.
	OnTap func()
	Key   string
}

// Group renders a header followed by the rows in [Start, End] (inclusive).
// Ranges are clipped to the available rows and are not checked for overlap.
type Group struct {
	Start  int
	End    int
	Header Content
}

// SortSpec names the column currently sorted and its direction.
type SortSpec struct {
	Column    int
	Ascending bool
}

// Tristate is the value of a "select all" control.
type Tristate int

const (
	Unchecked Tristate = iota
	Checked
	Indeterminate
)

func (t Tristate) String() string {
	switch t {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// HeaderState derives the select-all value from the number of selected rows.
func HeaderState(selected, total int) Tristate {
	switch {
	case total > 0 && selected == total:
		return Checked
	case selected > 0 && selected < total:
		return Indeterminate
	default:
		return Unchecked
	}
}

// NextHeaderValue is the value a tap on the select-all control requests:
// everything when nothing is selected, nothing otherwise.
func NextHeaderValue(current Tristate) bool {
	return current == Unchecked
}
