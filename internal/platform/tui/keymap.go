package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the sandbox.
type KeyMap struct {
	NextBody   key.Binding
	PrevBody   key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	ToggleSpin key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBody, k.RotateCW, k.ToggleSpin, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextBody, k.PrevBody},
		{k.Left, k.Right, k.Up, k.Down},
		{k.RotateCW, k.RotateCCW, k.ToggleSpin},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default sandbox key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextBody: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next body"),
		),
		PrevBody: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab", "previous body"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rotate back"),
		),
		ToggleSpin: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "spin"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
