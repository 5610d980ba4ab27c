package input

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Down              key.Binding
	Up                key.Binding
	Right             key.Binding
	Left              key.Binding
	NextVertical      key.Binding
	PrevVertical      key.Binding
	NextHorizontal    key.Binding
	PrevHorizontal    key.Binding
	Next              key.Binding
	Prev              key.Binding
	ToggleFocus       key.Binding
	ToggleOrientation key.Binding
	Yank              key.Binding
	Help              key.Binding
	Quit              key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "pan right"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "pan left"),
		),
		NextVertical: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "next panel (vertical)"),
		),
		PrevVertical: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "prev panel (vertical)"),
		),
		NextHorizontal: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "next panel (horizontal)"),
		),
		PrevHorizontal: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "prev panel (horizontal)"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next panel"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "prev panel"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f", "focus panel"),
		),
		ToggleOrientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "flip layout"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy panel"),
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

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.ToggleFocus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Right, k.Left},
		{k.NextVertical, k.PrevVertical, k.NextHorizontal, k.PrevHorizontal},
		{k.Next, k.Prev, k.ToggleFocus, k.ToggleOrientation},
		{k.Yank, k.Help, k.Quit},
	}
}
