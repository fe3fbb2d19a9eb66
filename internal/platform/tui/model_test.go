package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *pong.Game, *core.Screen) {
	t.Helper()
	screen := core.NewScreen(40, 20)
	game := pong.New(screen, config.DefaultPongConfig(), pong.WithSeed(5))
	m := NewModel(game, screen)
	m.now = func() time.Time { return base }
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no tick command")
	}
	return m, game, screen
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsOnOpeningScreen(t *testing.T) {
	m, game, _ := newTestModel(t)

	if game.Phase() != pong.PhaseOpening {
		t.Fatalf("Phase() = %v, expected opening", game.Phase())
	}
	if !strings.Contains(m.View(), "PRESS ANY KEY") {
		t.Error("View() should show the opening screen")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if game.Phase() != pong.PhaseActive {
		t.Errorf("Phase() = %v, expected any key to start play", game.Phase())
	}
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	startRow := game.State().Left.Row
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	if game.State().Left.Row != startRow {
		t.Fatal("keys should not move the paddle before a tick")
	}
	if m.pending != core.KeyUp {
		t.Errorf("pending = %v, expected the most recent key", m.pending)
	}

	// 130ms at 60ms per tick releases two ticks; only the first sees the key.
	m, cmd := update(t, m, TickMsg(base.Add(130*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := game.State().Left.Row; got != startRow-1 {
		t.Errorf("left row = %d, expected %d", got, startRow-1)
	}
	if m.pending != core.KeyNone {
		t.Errorf("pending = %v, expected consumed", m.pending)
	}
}

func TestModelEscapeQuits(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m, cmd := update(t, m, TickMsg(base.Add(61*time.Millisecond)))
	if game.Phase() != pong.PhaseQuit {
		t.Fatalf("Phase() = %v, expected quit", game.Phase())
	}
	if !isQuit(cmd) {
		t.Error("expected tea.Quit after escape")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelEscapeOnOpeningQuitsImmediately(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("expected tea.Quit from the opening screen")
	}
}

func TestModelResizeDuringPlay(t *testing.T) {
	m, game, screen := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if w, h := screen.Size(); w != 60 || h != 30 {
		t.Fatalf("screen = %dx%d, expected 60x30", w, h)
	}
	if game.State().Width != 40 {
		t.Fatal("the game should pick up the resize on the next tick")
	}

	_, _ = update(t, m, TickMsg(base.Add(61*time.Millisecond)))
	st := game.State()
	if st.Width != 60 || st.Height != 30 {
		t.Errorf("state grid = %dx%d, expected 60x30", st.Width, st.Height)
	}
	if st.Right.Col != 57 {
		t.Errorf("right paddle col = %d, expected 57", st.Right.Col)
	}
}

func TestModelResizeWhileWaiting(t *testing.T) {
	m, game, _ := newTestModel(t)

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 70, Height: 25})
	if st := game.State(); st.Width != 70 || st.Height != 25 {
		t.Errorf("state grid = %dx%d, expected 70x25", st.Width, st.Height)
	}
	if game.Phase() != pong.PhaseOpening {
		t.Errorf("Phase() = %v, resize should not start the game", game.Phase())
	}
}
