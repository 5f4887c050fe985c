package browser

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every browser binding. It satisfies help.KeyMap.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Expand    key.Binding
	Sort      key.Binding
	Tap       key.Binding
	DoubleTap key.Binding
	LongPress key.Binding
	Copy      key.Binding
	Reload    key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Expand:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "expand")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		Tap:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tap row")),
		DoubleTap: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "double tap")),
		LongPress: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "long press")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Dismiss:   key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Expand, k.Sort, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.SelectAll, k.Expand, k.Sort},
		{k.Tap, k.DoubleTap, k.LongPress, k.Copy},
		{k.Reload, k.Dismiss, k.Help, k.Quit},
	}
}
