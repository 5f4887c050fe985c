package browser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

const servicesYAML = `version: "1.0"
name: Services
settings:
  checkboxes: true
columns:
  - key: name
    sortable: true
  - key: latency
    sortable: true
    numeric: true
  - key: owner
rows:
  - key: api
    cells: [api, "12", core]
    details: Public HTTP API
  - key: worker
    cells: [worker, "140", batch]
  - key: cron
    cells: [cron, "3", ops]
`

func parse(t *testing.T, yaml string) *config.Document {
	t.Helper()
	doc, err := config.ParseBytes("services.yaml", []byte(yaml))
	require.NoError(t, err)
	return doc
}

func newTestModel(t *testing.T, yaml string, opts ...Option) Model {
	t.Helper()
	m, err := New("services.yaml", parse(t, yaml), opts...)
	require.NoError(t, err)
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

// gridIndex returns the position of data row index in the grid.
func gridIndex(t *testing.T, m Model, index int) int {
	t.Helper()
	for i, r := range m.view.Grid.Rows {
		if r.Kind == table.RowData && r.Index == index {
			return i
		}
	}
	t.Fatalf("data row %d not in grid", index)
	return -1
}

// point returns the screen position of a grid row and slot.
func point(m Model, gridRow, slot int) (int, int) {
	return m.frame.Columns[slot].Start, m.chromeTop() + m.frame.Rows[gridRow].Start - m.viewport.YOffset
}

func mouse(x, y int, button tea.MouseButton, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: action}
}

func rowKeys(m Model) []string {
	keys := make([]string, len(m.doc.Rows))
	for i, r := range m.doc.Rows {
		keys[i] = r.Key
	}
	return keys
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)

	assert.Equal(t, table.ViewGrid, m.view.Kind)
	assert.Equal(t, 0, m.Cursor())
	assert.Empty(t, m.SelectedRows())
	assert.Nil(t, m.Sort())
	assert.Nil(t, m.Init())

	row, ok := m.view.Grid.DataRow(0)
	require.True(t, ok)
	assert.True(t, row.Hovered, "hover follows the cursor")
}

func TestNew_InvalidTheme(t *testing.T) {
	t.Parallel()

	doc := parse(t, servicesYAML)
	doc.Settings.Theme = "neon"
	_, err := New("services.yaml", doc)
	require.Error(t, err)
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 60, m.width)
	assert.Equal(t, 20, m.height)
	assert.Equal(t, 20-m.chromeTop()-m.chromeBottom(), m.viewport.Height)
	for _, line := range m.frame.Lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestUpdate_CursorMovesHover(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "down")

	assert.Equal(t, 1, m.Cursor())
	prev, _ := m.view.Grid.DataRow(0)
	next, _ := m.view.Grid.DataRow(1)
	assert.False(t, prev.Hovered)
	assert.True(t, next.Hovered)

	m = press(t, m, "down", "down", "down")
	assert.Equal(t, 2, m.Cursor(), "cursor clamps at the last row")

	m = press(t, m, "g")
	assert.Equal(t, 0, m.Cursor())
	m = press(t, m, "G")
	assert.Equal(t, 2, m.Cursor())
}

func TestUpdate_SelectRow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "space")
	assert.Equal(t, []int{0}, m.SelectedRows())

	row, _ := m.view.Grid.DataRow(0)
	assert.True(t, row.Selected)

	m = press(t, m, "space")
	assert.Empty(t, m.SelectedRows())
}

func TestUpdate_SelectAll(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "a")
	assert.Equal(t, []int{0, 1, 2}, m.SelectedRows())
	assert.Equal(t, "Selected all rows", m.status)

	m = press(t, m, "a")
	assert.Empty(t, m.SelectedRows())
	assert.Equal(t, "Cleared selection", m.status)

	// From the mixed state the header clears the selection.
	m = press(t, m, "space", "a")
	assert.Empty(t, m.SelectedRows())
}

func TestUpdate_Expand(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "enter")
	assert.Equal(t, []int{0}, m.ExpandedRows())
	require.Len(t, m.view.Grid.RowsOfKind(table.RowExpansion), 1)
	assert.Contains(t, m.frame.String(), "Public HTTP API")

	// worker has no details, so its toggle is inert.
	m = press(t, m, "down", "enter")
	assert.Equal(t, []int{0}, m.ExpandedRows())

	m = press(t, m, "up", "enter")
	assert.Empty(t, m.ExpandedRows())
}

func TestUpdate_SortCarriesSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "space", "right", "s")

	require.NotNil(t, m.Sort())
	assert.Equal(t, table.SortSpec{Column: 1, Ascending: true}, *m.Sort())
	assert.Equal(t, []string{"cron", "api", "worker"}, rowKeys(m))
	assert.Equal(t, []int{1}, m.SelectedRows(), "api moved to index 1")
	assert.Equal(t, 1, m.Cursor(), "cursor follows its row")

	row, _ := m.view.Grid.DataRow(1)
	assert.True(t, row.Selected)
	assert.Contains(t, m.View(), "▲")

	m = press(t, m, "s")
	assert.Equal(t, table.SortSpec{Column: 1, Ascending: false}, *m.Sort())
	assert.Equal(t, []string{"worker", "api", "cron"}, rowKeys(m))
	assert.Equal(t, []int{1}, m.SelectedRows())
}

func TestUpdate_SortUnsortableColumn(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "right", "right", "s")

	assert.Nil(t, m.Sort())
	assert.Equal(t, "owner is not sortable", m.status)
}

func TestUpdate_InitialSortFromDocument(t *testing.T) {
	t.Parallel()

	yaml := strings.Replace(servicesYAML, "  checkboxes: true\n", "  checkboxes: true\n  sort:\n    column: latency\n    ascending: false\n", 1)
	yaml = strings.Replace(yaml, "    cells: [cron, \"3\", ops]\n", "    cells: [cron, \"3\", ops]\n    selected: true\n", 1)
	m := newTestModel(t, yaml)

	assert.Equal(t, []string{"worker", "api", "cron"}, rowKeys(m))
	assert.Equal(t, []int{2}, m.SelectedRows())
}

func TestUpdate_RowGestures(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)

	m = press(t, m, "t")
	assert.Equal(t, "Tapped api", m.status)

	m = press(t, m, "down", "T")
	assert.Equal(t, "Double tapped worker", m.status)

	m = press(t, m, "p")
	assert.Equal(t, "Long pressed worker", m.status)
}

func TestUpdate_MouseCheckbox(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	x, y := point(m, gridIndex(t, m, 1), 0)
	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))

	assert.Equal(t, []int{1}, m.SelectedRows())
	assert.Equal(t, 1, m.Cursor())

	x, y = point(m, 0, 0)
	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))
	assert.Empty(t, m.SelectedRows(), "header checkbox clears a mixed selection")

	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))
	assert.Equal(t, []int{0, 1, 2}, m.SelectedRows())
}

func TestUpdate_MouseTapAndDoubleTap(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newTestModel(t, servicesYAML, WithClock(func() time.Time { return now }))

	gi := gridIndex(t, m, 2)
	x, y := point(m, gi, m.view.Grid.Plan.DataSlot(0))
	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))
	assert.Equal(t, "Tapped cron", m.status)
	assert.Equal(t, 2, m.Cursor())

	now = now.Add(100 * time.Millisecond)
	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))
	assert.Equal(t, "Double tapped cron", m.status)

	now = now.Add(2 * time.Second)
	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))
	assert.Equal(t, "Tapped cron", m.status)
}

func TestUpdate_MouseLongPressAndMotion(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)

	x, y := point(m, gridIndex(t, m, 1), m.view.Grid.Plan.DataSlot(1))
	m = send(t, m, mouse(x, y, tea.MouseButtonNone, tea.MouseActionMotion))
	assert.Equal(t, 1, m.Cursor())
	row, _ := m.view.Grid.DataRow(1)
	assert.True(t, row.Hovered)

	x, y = point(m, gridIndex(t, m, 0), m.view.Grid.Plan.DataSlot(1))
	m = send(t, m, mouse(x, y, tea.MouseButtonRight, tea.MouseActionPress))
	assert.Equal(t, "Long pressed api", m.status)
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_MouseHeaderSorts(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	x, y := point(m, 0, m.view.Grid.Plan.DataSlot(0))
	m = send(t, m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))

	require.NotNil(t, m.Sort())
	assert.Equal(t, 0, m.Sort().Column)
	assert.Equal(t, []string{"api", "cron", "worker"}, rowKeys(m))
}

func TestUpdate_MouseOutsideTable(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = send(t, m, mouse(0, 0, tea.MouseButtonLeft, tea.MouseActionPress))
	assert.Empty(t, m.SelectedRows())
	assert.Empty(t, m.status)
}

func TestUpdate_Copy(t *testing.T) {
	t.Parallel()

	var copied string
	m := newTestModel(t, servicesYAML, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	m, cmd := sendCmd(t, m, keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Copied 1 row(s)"}, cmd())
	assert.Equal(t, "name\tlatency\towner\napi\t12\tcore", copied)

	m = press(t, m, "down", "space", "down", "space")
	_, cmd = sendCmd(t, m, keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Copied 2 row(s)"}, cmd())
	assert.Equal(t, "name\tlatency\towner\nworker\t140\tbatch\ncron\t3\tops", copied)
}

func TestUpdate_CopyError(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	_, cmd := sendCmd(t, m, keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, ErrorMsg{Message: "Clipboard error: no clipboard"}, cmd())
}

func TestUpdate_Reload(t *testing.T) {
	t.Parallel()

	reloaded := strings.Replace(servicesYAML, "    cells: [cron, \"3\", ops]\n", "    cells: [cron, \"3\", ops]\n    selected: true\n", 1)
	m := newTestModel(t, servicesYAML, WithLoader(func(path string) (*config.Document, error) {
		assert.Equal(t, "services.yaml", path)
		return config.ParseBytes(path, []byte(reloaded))
	}))

	m = press(t, m, "space")
	m, cmd := sendCmd(t, m, ReloadMsg{Path: "services.yaml"})
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, DocumentLoadedMsg{}, msg)
	m = send(t, m, msg)

	assert.Equal(t, []int{2}, m.SelectedRows(), "changed document flags re-seed the selection")
	assert.Equal(t, "Reloaded services.yaml", m.status)
}

func TestUpdate_ReloadKeepsStateWhenFlagsUnchanged(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "down", "space", "right", "s")
	require.Equal(t, []int{2}, m.SelectedRows())

	m = send(t, m, DocumentLoadedMsg{Doc: parse(t, servicesYAML)})

	assert.Equal(t, []int{2}, m.SelectedRows())
	assert.Equal(t, []string{"cron", "api", "worker"}, rowKeys(m), "the active sort is reapplied")
}

func TestUpdate_ReloadError(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML, WithLoader(func(string) (*config.Document, error) {
		return nil, errors.New("boom")
	}))

	_, cmd := sendCmd(t, m, keyMsg("r"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, ErrorMsg{Message: "Reload failed: boom"}, msg)

	m, cmd = sendCmd(t, m, msg)
	assert.NotNil(t, cmd)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Reload failed: boom")

	m = press(t, m, "x")
	assert.False(t, m.showError)

	m = send(t, m, ErrorMsg{Message: "again"})
	m = send(t, m, ClearErrorMsg{})
	assert.False(t, m.showError)
	assert.Empty(t, m.errorMsg)
}

func TestUpdate_Loading(t *testing.T) {
	t.Parallel()

	yaml := strings.Replace(servicesYAML, "  checkboxes: true\n", "  checkboxes: true\n  loading: true\n", 1)
	m := newTestModel(t, yaml)

	assert.Equal(t, table.ViewLoading, m.view.Kind)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "loading")

	_, cmd := sendCmd(t, m, spinner.TickMsg{})
	assert.NotNil(t, cmd)

	m = press(t, m, "space")
	assert.Empty(t, m.SelectedRows(), "gestures are ignored while loading")
}

func TestUpdate_SpinnerIdleWhenLoaded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	_, cmd := sendCmd(t, m, spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestUpdate_Empty(t *testing.T) {
	t.Parallel()

	yaml := `version: "1.0"
name: Nothing
settings:
  empty: Nothing to show
columns:
  - key: name
`
	m := newTestModel(t, yaml)
	assert.Equal(t, table.ViewEmpty, m.view.Kind)
	assert.Contains(t, m.View(), "Nothing to show")

	m = press(t, m, "down", "space")
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_HelpAndQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	short := m.chromeBottom()

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Greater(t, m.chromeBottom(), short)

	_, cmd := sendCmd(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_Header(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, servicesYAML)
	m = press(t, m, "space", "enter")

	view := m.View()
	assert.Contains(t, view, "Services")
	assert.Contains(t, view, "3 rows")
	assert.Contains(t, view, "1 selected")
	assert.Contains(t, view, "1 expanded")
}
