package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Adjust   key.Binding
	Navigate key.Binding
	Vehicle  key.Binding
	Scenario key.Binding
	Entity   key.Binding
	Method   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Adjust: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "adjust"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "tab"),
			key.WithHelp("↑/↓", "switch slider"),
		),
		Vehicle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "next vehicle"),
		),
		Scenario: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next scenario"),
		),
		Entity: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "next entity"),
		),
		Method: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cash/credit"),
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
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Adjust, k.Navigate, k.Vehicle, k.Method, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Adjust, k.Navigate},
		{k.Vehicle, k.Scenario, k.Entity, k.Method},
		{k.Help, k.Quit},
	}
}
