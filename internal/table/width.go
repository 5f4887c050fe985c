package table

// StructuralWidth is the fixed width, in layout units, of the checkbox and
// expansion toggle slots.
const StructuralWidth = 48

// SlotKind tells renderers what occupies a slot of the plan.
type SlotKind int

const (
	SlotData SlotKind = iota
	SlotCheckbox
	SlotExpansion
)

// Slot is one physical column of the grid.
type Slot struct {
	Kind SlotKind
	// Column is the data column index, or -1 for structural slots.
	Column int
	Width  Width
}

// WidthPlan is the ordered slot layout shared by every grid row.
type WidthPlan []Slot

// ResolveWidths maps columns and the structural flags to a width plan laid out
// as [checkbox?, columns..., expansion?]. Conflicting strategies are not
// validated; the layout engine resolves them.
func ResolveWidths(columns []Column, hasCheckbox, hasExpansion bool) WidthPlan {
	plan := make(WidthPlan, 0, len(columns)+2)

	if hasCheckbox {
		plan = append(plan, Slot{Kind: SlotCheckbox, Column: -1, Width: Fixed(StructuralWidth)})
	}

	for i, col := range columns {
		w := Flex(1)
		if col.Width != nil {
			w = *col.Width
		}
		if col.MinWidth > 0 {
			w.Min = col.MinWidth
		}
		if col.MaxWidth > 0 {
			w.Max = col.MaxWidth
		}
		plan = append(plan, Slot{Kind: SlotData, Column: i, Width: w})
	}

	if hasExpansion {
		plan = append(plan, Slot{Kind: SlotExpansion, Column: -1, Width: Fixed(StructuralWidth)})
	}

	return plan
}

// Widths returns the strategies in slot order.
func (p WidthPlan) Widths() []Width {
	out := make([]Width, len(p))
	for i, s := range p {
		out[i] = s.Width
	}
	return out
}

// HasCheckbox reports whether slot 0 is the checkbox slot.
func (p WidthPlan) HasCheckbox() bool {
	return len(p) > 0 && p[0].Kind == SlotCheckbox
}

// HasExpansion reports whether the last slot is the expansion toggle.
func (p WidthPlan) HasExpansion() bool {
	return len(p) > 0 && p[len(p)-1].Kind == SlotExpansion
}

// DataSlot returns the slot index holding data column col, or -1.
func (p WidthPlan) DataSlot(col int) int {
	for i, s := range p {
		if s.Kind == SlotData && s.Column == col {
			return i
		}
	}
	return -1
}
