package table

import (
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// HeaderBuilder replaces the default header of a column. The result is shown
// without padding or alignment and gets no sort indicator or tap handling.
type HeaderBuilder func(column Column, index int) Content

// CellBuilder replaces the content of a data cell. The result is shown without
// the resolved padding, alignment or text style.
type CellBuilder func(content Content, column Column, row Row, rowIndex, columnIndex int) Content

// RowBuilder post-processes a composed data row. The result is padded or
// truncated back to the plan's slot count.
type RowBuilder func(row Row, index int, composed GridRow) GridRow

// CheckboxBuilder renders a checkbox for value. onChanged requests a new value.
type CheckboxBuilder func(value Tristate, onChanged func(bool)) Content

// ExpandableRowBuilder returns the expansion content of a row, or nil when the
// row cannot expand.
type ExpandableRowBuilder func(row Row, index int) Content

// GroupHeaderBuilder replaces the default group header. The result is shown
// without the theme's group header padding or text style.
type GroupHeaderBuilder func(group Group, index int) Content

// Config is the complete declarative input of one build.
type Config struct {
	Columns []Column
	Rows    []Row
	// Theme defaults to DefaultTheme(components.DefaultTheme()).
	Theme *Theme

	HeaderBuilder  HeaderBuilder
	CellBuilder    CellBuilder
	RowBuilder     RowBuilder
	EmptyBuilder   func() Content
	LoadingBuilder func() Content

	FooterRows []Row

	ShowCheckboxes  bool
	CheckboxBuilder CheckboxBuilder
	// OnSelectAll receives the value requested by the select-all control.
	OnSelectAll func(value bool)
	// SelectedRows seeds the selection. Nil leaves the selection uncontrolled.
	SelectedRows  []int
	OnRowSelected func(index int)

	ExpandableRowBuilder ExpandableRowBuilder
	// ExpandedRows seeds the expansion. Nil leaves it uncontrolled.
	ExpandedRows  []int
	OnRowExpanded func(index int)

	IsLoading bool

	OnSort func(column int)
	Sort   *SortSpec

	Groups             []Group
	GroupHeaderBuilder GroupHeaderBuilder

	OnRowTap       func(index int)
	OnRowDoubleTap func(index int)
	OnRowLongPress func(index int)
	OnCellTap      func(rowIndex, columnIndex int)

	// Border overrides the theme border and turns it on.
	Border *lipgloss.Border
	// Divider is inserted as a separator row between consecutive rows.
	Divider Content
}

// ViewKind is the top-level outcome of a build.
type ViewKind int

const (
	ViewGrid ViewKind = iota
	ViewLoading
	ViewEmpty
)

func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewEmpty:
		return "empty"
	default:
		return "grid"
	}
}

// View is the result of Build. Content is set for the loading and empty
// states, Grid for ViewGrid.
type View struct {
	Kind    ViewKind
	Content Content
	Grid    Grid
}

// Option configures a Table.
type Option func(*Table)

// WithOnChange registers fn to run after every state mutation so the caller
// can rebuild.
func WithOnChange(fn func()) Option {
	return func(t *Table) {
		t.onChange = fn
	}
}

// Table is a stateful table instance. Build may be called any number of times
// with fresh configurations; selection, expansion and hover survive between
// calls.
type Table struct {
	state    *State
	onChange func()
}

// New creates a table with empty state.
func New(opts ...Option) *Table {
	t := &Table{state: NewState()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State exposes the interaction state for inspection.
func (t *Table) State() *State {
	return t.state
}

// Build reconciles external state and produces the view for cfg. Loading wins
// over empty, and empty applies only when there are no rows and no groups.
func (t *Table) Build(cfg Config) View {
	t.state.Reconcile(cfg.SelectedRows, cfg.ExpandedRows)

	if cfg.IsLoading {
		content := Content(components.MutedText("Loading…"))
		if cfg.LoadingBuilder != nil {
			content = cfg.LoadingBuilder()
		}
		return View{Kind: ViewLoading, Content: orBlank(content)}
	}

	if len(cfg.Rows) == 0 && cfg.Groups == nil {
		content := Content(components.MutedText("No data"))
		if cfg.EmptyBuilder != nil {
			content = cfg.EmptyBuilder()
		}
		return View{Kind: ViewEmpty, Content: orBlank(content)}
	}

	return View{Kind: ViewGrid, Grid: t.assemble(&cfg)}
}

// assemble orders header, body and footer rows over a single width plan.
func (t *Table) assemble(cfg *Config) Grid {
	theme := DefaultTheme(components.DefaultTheme())
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	if cfg.Border != nil {
		theme.Border = *cfg.Border
		theme.ShowBorder = true
	}

	c := &composer{
		table: t,
		cfg:   cfg,
		theme: theme,
		plan:  ResolveWidths(cfg.Columns, cfg.ShowCheckboxes, cfg.ExpandableRowBuilder != nil),
		snap:  t.state.snapshot(),
	}

	rows := []GridRow{c.header()}
	rows = append(rows, c.body()...)
	rows = append(rows, c.footers()...)

	return Grid{Plan: c.plan, Rows: rows, Theme: theme}
}

func (t *Table) toggleRow(i int, notify func(int)) {
	t.state.ToggleSelected(i)
	t.changed()
	if notify != nil {
		notify(i)
	}
}

func (t *Table) toggleAll(value bool, total int, notify func(bool)) {
	t.state.SetAllSelected(value, total)
	t.changed()
	if notify != nil {
		notify(value)
	}
}

func (t *Table) toggleExpanded(i int, notify func(int)) {
	t.state.ToggleExpanded(i)
	t.changed()
	if notify != nil {
		notify(i)
	}
}

func (t *Table) setHovered(i int, hovered bool) {
	if t.state.SetHovered(i, hovered) {
		t.changed()
	}
}

func (t *Table) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}

func orBlank(c Content) Content {
	if c == nil {
		return ui.Blank{}
	}
	return c
}
