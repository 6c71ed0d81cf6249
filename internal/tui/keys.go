package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the only bindings a kiosk screen honours
type KeyMap struct {
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
