package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	OrbitUp    key.Binding
	OrbitDown  key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	PanUp      key.Binding
	PanDown    key.Binding
	DollyIn    key.Binding
	DollyOut   key.Binding

	NextLight key.Binding
	PrevLight key.Binding

	Pilot     key.Binding
	ExitPilot key.Binding
	Cancel    key.Binding

	ToggleCoords key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings. The pilot chords match
// the classic ones: alt+l to pilot, alt+shift+l to exit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		OrbitLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "orbit left"),
		),
		OrbitRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "orbit right"),
		),
		OrbitUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "orbit up"),
		),
		OrbitDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "orbit down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←/H", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→/L", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/K", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓/J", "pan down"),
		),
		DollyIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "dolly in"),
		),
		DollyOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "dolly out"),
		),
		NextLight: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next light"),
		),
		PrevLight: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev light"),
		),
		Pilot: key.NewBinding(
			key.WithKeys("alt+l"),
			key.WithHelp("alt+l", "pilot light"),
		),
		ExitPilot: key.NewBinding(
			key.WithKeys("alt+L"),
			key.WithHelp("alt+L", "exit pilot"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleCoords: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "coords"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
