package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// translateKey maps a tcell key event to a game key.
func translateKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.KeyEscape
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return core.KeyUp
		case 's', 'S', 'j':
			return core.KeyDown
		}
	}
	return core.KeyOther
}
