package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Roll        key.Binding
	Select      key.Binding
	Hint        key.Binding
	ResetView   key.Binding
	NewGame     key.Binding
	Reconfigure key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Roll: key.NewBinding(
			key.WithKeys(" ", "space", "d"),
			key.WithHelp("space", "roll"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "move pawn"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		ResetView: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset view"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Reconfigure: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "setup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Select, k.Hint, k.ResetView, k.NewGame, k.Reconfigure, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Roll, k.Select, k.Hint},
		{k.ResetView, k.NewGame, k.Reconfigure, k.Quit},
	}
}
