package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the driver's key bindings. Pause handling itself lives
// in engine.InputController; the Pause binding here only feeds the help line.
type KeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings for the given pause key identifier.
func NewKeyMap(pauseKey string) KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(pauseKey),
			key.WithHelp(keyLabel(pauseKey), "pause/resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Quit}}
}

// keyLabel returns a printable name for a key identifier.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "":
		return "none"
	default:
		return k
	}
}
