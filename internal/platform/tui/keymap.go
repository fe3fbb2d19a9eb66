package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "paddle down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Map translates a key message to a game key.
// Any unbound key still counts as a press.
func (k KeyMap) Map(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyEscape
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	}
	return core.KeyOther
}
