package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type cellStyle struct {
	solid lipgloss.Style
	text  lipgloss.Style
}

// colorStyles maps color roles to lipgloss styles. Solid cells are drawn as
// background-colored spaces, text cells as foreground on the board background.
var colorStyles = map[core.Color]cellStyle{
	core.ColorBackground: {
		solid: lipgloss.NewStyle().Background(lipgloss.Color("0")),
		text:  lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("7")),
	},
	core.ColorLine: {
		solid: lipgloss.NewStyle().Background(lipgloss.Color("15")),
		text:  lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15")),
	},
	core.ColorBall: {
		solid: lipgloss.NewStyle().Background(lipgloss.Color("11")),
		text:  lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("11")),
	},
	core.ColorText: {
		solid: lipgloss.NewStyle().Background(lipgloss.Color("15")),
		text:  lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15")).Bold(true),
	},
}

func styleFor(c core.Cell) lipgloss.Style {
	st, ok := colorStyles[c.Color]
	if !ok {
		st = colorStyles[core.ColorBackground]
	}
	if c.Solid {
		return st.solid
	}
	return st.text
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for row := range s.Height() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < s.Width() {
			first := s.GetCell(row, col)

			var run strings.Builder
			for col < s.Width() {
				cell := s.GetCell(row, col)
				if cell.Color != first.Color || cell.Solid != first.Solid {
					break
				}
				run.WriteRune(cell.Rune)
				col++
			}

			sb.WriteString(styleFor(first).Render(run.String()))
		}
	}
	return sb.String()
}
