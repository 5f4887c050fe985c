// Package browser is the interactive terminal viewer for table documents. It
// owns a table.Table, rebuilds it after every gesture and paints the result
// into a scrollable viewport.
package browser

import (
	"fmt"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/render"
	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

const doubleClickWindow = 400 * time.Millisecond

// Loader reads and validates a document.
type Loader func(path string) (*config.Document, error)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for interaction events.
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithLoader replaces config.ParseDocument as the reload source.
func WithLoader(load Loader) Option {
	return func(m *Model) {
		if load != nil {
			m.load = load
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copy = write
		}
	}
}

// WithClock replaces time.Now for double-click detection.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithTheme sets the application theme tables derive their styles from.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.app = theme
	}
}

// inbox collects what table callbacks report during one gesture. Callbacks
// run synchronously inside Update, so the model drains it right after.
type inbox struct {
	sort    int
	status  string
	changes int
}

func (in *inbox) reset() {
	in.sort = -1
	in.status = ""
	in.changes = 0
}

// click remembers the last primary press for double-click detection.
type click struct {
	row int
	at  time.Time
}

// Model is the browser model.
type Model struct {
	// Core data
	path  string
	doc   *config.Document
	app   components.Theme
	table *table.Table
	inbox *inbox

	// Collaborators
	load Loader
	copy func(string) error
	now  func() time.Time
	log  *logger.Logger

	// Table state re-supplied on every build. selected and expanded mirror the
	// table after each gesture; declared* remember the document flags so a
	// reload only re-seeds when the file changed them.
	sort             *table.SortSpec
	selected         []int
	expanded         []int
	declaredSelected []int
	declaredExpanded []int

	// Build output
	view  table.View
	frame render.Frame

	// UI state
	cursor    int
	column    int
	lastClick click
	status    string
	showError bool
	errorMsg  string

	// Component state
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	// Dimensions
	width  int
	height int
}

// New creates a browser for doc, read from path. The browser takes ownership
// of doc and reorders its rows when sorting.
func New(path string, doc *config.Document, opts ...Option) (Model, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	in := &inbox{}
	in.reset()

	m := Model{
		path:     path,
		app:      components.DefaultTheme(),
		inbox:    in,
		load:     config.ParseDocument,
		copy:     clipboard.WriteAll,
		now:      time.Now,
		log:      logger.Nop(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.table = table.New(table.WithOnChange(func() { in.changes++ }))

	if err := m.adopt(doc, true); err != nil {
		return Model{}, err
	}
	m.resize(m.width, m.height)
	return m, nil
}

// Init starts the spinner while the document is in its loading state.
func (m Model) Init() tea.Cmd {
	if m.view.Kind == table.ViewLoading {
		return m.spinner.Tick
	}
	return nil
}

// adopt installs doc. The first document seeds table state from its flags;
// later documents only re-seed when their flags changed.
func (m *Model) adopt(doc *config.Document, initial bool) error {
	cfg, err := doc.Build(m.app)
	if err != nil {
		return err
	}

	m.doc = doc
	declaredSelected := cfg.SelectedRows
	declaredExpanded := cfg.ExpandedRows

	if initial {
		m.sort = cfg.Sort
	} else if m.sort != nil && m.sort.Column >= len(doc.Columns) {
		m.sort = nil
	}

	perm := identity(len(doc.Rows))
	if m.sort != nil {
		perm = doc.SortRows(*m.sort)
	}

	n := len(doc.Rows)
	if initial || !slices.Equal(declaredSelected, m.declaredSelected) {
		m.selected = remapIndices(declaredSelected, perm)
	} else {
		m.selected = below(m.selected, n)
	}
	if initial || !slices.Equal(declaredExpanded, m.declaredExpanded) {
		m.expanded = remapIndices(declaredExpanded, perm)
	} else {
		m.expanded = below(m.expanded, n)
	}
	m.declaredSelected = declaredSelected
	m.declaredExpanded = declaredExpanded

	m.cursor = min(max(m.cursor, 0), max(n-1, 0))
	m.column = min(max(m.column, 0), max(len(doc.Columns)-1, 0))
	m.table.State().ClearHover()

	m.rebuild()
	m.hover(m.cursor)
	return nil
}

// configure builds the table configuration and attaches the callbacks.
func (m *Model) configure() (table.Config, error) {
	cfg, err := m.doc.Build(m.app)
	if err != nil {
		return table.Config{}, err
	}
	cfg.SelectedRows = m.selected
	cfg.ExpandedRows = m.expanded
	cfg.Sort = m.sort

	in := m.inbox
	doc := m.doc
	log := m.log
	label := func(i int) string {
		if i >= 0 && i < len(doc.Rows) && doc.Rows[i].Key != "" {
			return doc.Rows[i].Key
		}
		return fmt.Sprintf("#%d", i+1)
	}

	cfg.OnSort = func(column int) {
		in.sort = column
	}
	cfg.OnRowSelected = func(i int) {
		log.DebugFields("row selection toggled", map[string]any{"row": label(i)})
	}
	cfg.OnSelectAll = func(value bool) {
		log.DebugFields("select all", map[string]any{"value": value})
		if value {
			in.status = "Selected all rows"
		} else {
			in.status = "Cleared selection"
		}
	}
	cfg.OnRowExpanded = func(i int) {
		log.DebugFields("row expansion toggled", map[string]any{"row": label(i)})
	}
	cfg.OnRowTap = func(i int) {
		in.status = "Tapped " + label(i)
	}
	cfg.OnRowDoubleTap = func(i int) {
		in.status = "Double tapped " + label(i)
	}
	cfg.OnRowLongPress = func(i int) {
		in.status = "Long pressed " + label(i)
	}
	cfg.OnCellTap = func(ri, ci int) {
		log.DebugFields("cell tapped", map[string]any{"row": label(ri), "column": ci})
	}
	return cfg, nil
}

// rebuild builds, paints and loads the frame into the viewport.
func (m *Model) rebuild() {
	cfg, err := m.configure()
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.view = m.table.Build(cfg)
	m.frame = render.PaintView(m.view, render.Options{Width: m.width})
	m.viewport.SetContent(m.frame.String())
	m.ensureCursorVisible()
}

// settle mirrors table state after a gesture, applies a requested sort and
// rebuilds.
func (m *Model) settle() {
	state := m.table.State()
	m.selected = state.Selected()
	m.expanded = state.Expanded()

	if m.inbox.changes > 0 {
		m.log.DebugFields("table state changed", map[string]any{
			"mutations": m.inbox.changes,
			"selected":  len(m.selected),
			"expanded":  len(m.expanded),
		})
	}
	if m.inbox.sort >= 0 {
		m.applySort(m.inbox.sort)
	}
	if m.inbox.status != "" {
		m.status = m.inbox.status
	}
	m.inbox.reset()
	m.rebuild()
}

// applySort advances the sort on column and reorders the document, carrying
// selection, expansion and the cursor along with their rows.
func (m *Model) applySort(column int) {
	m.sort = nextSort(m.sort, column)
	perm := m.doc.SortRows(*m.sort)

	m.selected = remapIndices(m.selected, perm)
	m.expanded = remapIndices(m.expanded, perm)
	if moved := remapIndices([]int{m.cursor}, perm); len(moved) == 1 {
		m.cursor = moved[0]
	}

	m.table.State().ClearHover()
	m.table.State().SetHovered(m.cursor, true)

	direction := "ascending"
	if !m.sort.Ascending {
		direction = "descending"
	}
	m.status = fmt.Sprintf("Sorted by %s (%s)", m.doc.Columns[column].Label(), direction)
	m.log.DebugFields("sort applied", map[string]any{"column": m.doc.Columns[column].Key, "ascending": m.sort.Ascending})
}

// resize fits the viewport between the header and the footer.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeTop()-m.chromeBottom(), 1)
	m.rebuild()
}

func (m *Model) setError(msg string) {
	m.showError = true
	m.errorMsg = msg
}

// order lists logical data rows in display order.
func (m Model) order() []int {
	var out []int
	seen := map[int]bool{}
	for _, r := range m.view.Grid.Rows {
		if r.Kind == table.RowData && !seen[r.Index] {
			seen[r.Index] = true
			out = append(out, r.Index)
		}
	}
	return out
}

// cursorRow returns the grid row under the cursor.
func (m Model) cursorRow() (table.GridRow, bool) {
	if m.view.Kind != table.ViewGrid {
		return table.GridRow{}, false
	}
	return m.view.Grid.DataRow(m.cursor)
}

// moveCursor moves the cursor by delta positions in display order, clamping
// at both ends.
func (m *Model) moveCursor(delta int) {
	order := m.order()
	if len(order) == 0 {
		return
	}
	pos := max(slices.Index(order, m.cursor), 0)
	pos = min(max(pos+delta, 0), len(order)-1)
	m.focus(order[pos])
}

// focus moves the cursor to row and lets hover follow it.
func (m *Model) focus(row int) {
	if row == m.cursor {
		m.hover(row)
		return
	}
	if prev, ok := m.cursorRow(); ok && prev.OnHover != nil {
		prev.OnHover(false)
	}
	m.cursor = row
	m.hover(row)
}

func (m *Model) hover(row int) {
	if r, ok := m.view.Grid.DataRow(row); ok && m.view.Kind == table.ViewGrid && r.OnHover != nil {
		r.OnHover(true)
		m.settle()
	}
}

// ensureCursorVisible scrolls the viewport so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	if m.view.Kind != table.ViewGrid {
		return
	}
	for i, r := range m.view.Grid.Rows {
		if r.Kind != table.RowData || r.Index != m.cursor || i >= len(m.frame.Rows) {
			continue
		}
		box := m.frame.Rows[i]
		switch {
		case box.Start < m.viewport.YOffset:
			m.viewport.SetYOffset(box.Start)
		case box.Start+box.Size > m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(box.Start + box.Size - m.viewport.Height)
		}
		return
	}
}

// SelectedRows returns the selected row indices in display order.
func (m Model) SelectedRows() []int {
	return slices.Clone(m.selected)
}

// ExpandedRows returns the expanded row indices in display order.
func (m Model) ExpandedRows() []int {
	return slices.Clone(m.expanded)
}

// Cursor returns the logical row under the cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Sort returns the active sort, if any.
func (m Model) Sort() *table.SortSpec {
	return m.sort
}

// Document returns the document in its current (possibly sorted) order.
func (m Model) Document() *config.Document {
	return m.doc
}
