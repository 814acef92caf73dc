package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the chart key bindings.
type keyMap struct {
	PanLeft     key.Binding
	PanRight    key.Binding
	LaneUp      key.Binding
	LaneDown    key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PanLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		LaneUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "lane up"),
		),
		LaneDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "lane down"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "cursor left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "cursor right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut, k.Reset},
		{k.LaneUp, k.LaneDown, k.CursorLeft, k.CursorRight},
		{k.Help, k.Quit},
	}
}
