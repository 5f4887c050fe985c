package browser

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tablekit/internal/export"
	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

const errorTimeout = 5 * time.Second

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if m.view.Kind != table.ViewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ReloadMsg:
		m.log.DebugFields("reload requested", map[string]any{"path": msg.Path})
		return m, loadCmd(m.path, m.load)

	case DocumentLoadedMsg:
		if err := m.adopt(msg.Doc, false); err != nil {
			m.setError(err.Error())
			m.resize(m.width, m.height)
			return m, clearErrorCmd(errorTimeout)
		}
		m.status = "Reloaded " + m.path
		m.log.Info("document reloaded")
		return m, m.Init()

	case StatusMsg:
		m.status = msg.Message
		return m, nil

	case ErrorMsg:
		m.log.Warn(msg.Message)
		m.setError(msg.Message)
		m.resize(m.width, m.height)
		return m, clearErrorCmd(errorTimeout)

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		m.resize(m.width, m.height)
		return m, nil
	}

	return m, nil
}

// handleKeyPress maps bindings to table gestures.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
			m.resize(m.width, m.height)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, loadCmd(m.path, m.load)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	if m.view.Kind != table.ViewGrid {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.doc.Rows))

	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.doc.Rows))

	case key.Matches(msg, m.keys.Left):
		m.column = max(m.column-1, 0)
		m.status = "Column: " + m.doc.Columns[m.column].Label()

	case key.Matches(msg, m.keys.Right):
		m.column = min(m.column+1, len(m.doc.Columns)-1)
		m.status = "Column: " + m.doc.Columns[m.column].Label()

	case key.Matches(msg, m.keys.Select):
		m.tapCell(m.cursorCell(table.CellCheckbox))

	case key.Matches(msg, m.keys.SelectAll):
		cell, _ := m.view.Grid.Header().CellOfKind(table.CellCheckbox)
		m.tapCell(cell)

	case key.Matches(msg, m.keys.Expand):
		m.tapCell(m.cursorCell(table.CellExpandToggle))

	case key.Matches(msg, m.keys.Sort):
		header := m.view.Grid.Header()
		cell, _ := header.Slot(m.view.Grid.Plan.DataSlot(m.column))
		if !m.tapCell(cell) {
			m.status = m.doc.Columns[m.column].Label() + " is not sortable"
		}

	case key.Matches(msg, m.keys.Tap):
		if row, ok := m.cursorRow(); ok {
			m.gesture(row.OnTap)
		}

	case key.Matches(msg, m.keys.DoubleTap):
		if row, ok := m.cursorRow(); ok {
			m.gesture(row.OnDoubleTap)
		}

	case key.Matches(msg, m.keys.LongPress):
		if row, ok := m.cursorRow(); ok {
			m.gesture(row.OnLongPress)
		}

	case key.Matches(msg, m.keys.Copy):
		text, rows := m.selectionText()
		if rows == 0 {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, copyCmd(text, rows, m.copy)
	}

	return m, nil
}

// handleMouse hit-tests the painted frame. A primary press taps the cell and
// its row, a second press on the same row within doubleClickWindow is a double
// tap, a secondary press is a long press and motion moves the hover.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		return m, nil
	}

	if m.view.Kind != table.ViewGrid {
		return m, nil
	}

	y := msg.Y - m.chromeTop() + m.viewport.YOffset
	if msg.Y < m.chromeTop() || msg.Y >= m.chromeTop()+m.viewport.Height {
		return m, nil
	}
	ri, slot, ok := m.frame.Hit(msg.X, y)
	if !ok {
		return m, nil
	}
	row := m.view.Grid.Rows[ri]
	cell, _ := row.Slot(slot)

	if msg.Action == tea.MouseActionMotion {
		if row.Kind == table.RowData {
			m.focus(row.Index)
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if row.Kind == table.RowData {
			m.focus(row.Index)
		}
		now := m.now()
		if row.Kind == table.RowData && m.lastClick.row == ri && now.Sub(m.lastClick.at) <= doubleClickWindow {
			m.lastClick = click{row: -1}
			m.gesture(row.OnDoubleTap)
			return m, nil
		}
		m.lastClick = click{row: ri, at: now}

		handled := m.tapCell(cell)
		if row.Kind == table.RowData && cell.Kind == table.CellContent {
			m.gesture(row.OnTap)
		} else if !handled {
			m.gesture(row.OnTap)
		}

	case tea.MouseButtonRight:
		if row.Kind == table.RowData {
			m.focus(row.Index)
			m.gesture(row.OnLongPress)
		}
	}
	return m, nil
}

func (m Model) cursorCell(kind table.CellKind) table.Cell {
	row, ok := m.cursorRow()
	if !ok {
		return table.Cell{}
	}
	cell, _ := row.CellOfKind(kind)
	return cell
}

// tapCell taps cell and settles the result. It reports whether the cell was
// interactive.
func (m *Model) tapCell(cell table.Cell) bool {
	if !cell.Tap() {
		return false
	}
	m.settle()
	return true
}

func (m *Model) gesture(fn func()) {
	if fn == nil {
		return
	}
	fn()
	m.settle()
}

// selectionText renders the selected rows, or the cursor row when nothing is
// selected, as tab-separated lines under a header line.
func (m Model) selectionText() (string, int) {
	header, records := export.Flatten(m.view.Grid)

	picked := map[int]bool{}
	for _, i := range m.selected {
		picked[i] = true
	}
	if len(picked) == 0 {
		picked[m.cursor] = true
	}

	lines := []string{strings.Join(header, "\t")}
	seen := map[int]bool{}
	for _, r := range records {
		if r.Kind != table.RowData || !picked[r.Index] || seen[r.Index] {
			continue
		}
		seen[r.Index] = true
		lines = append(lines, strings.Join(r.Cells, "\t"))
	}
	return strings.Join(lines, "\n"), len(seen)
}
