// Package tui provides the Bubble Tea backend: a model driving the game over
// a cell buffer, lipgloss rendering, key bindings, the SSH server and the
// round history viewer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger game simulation ticks.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
