package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// newTestState builds a state on a screen-backed renderer with the
// paddles centered and the ball placed explicitly.
func newTestState(t *testing.T, w, h int, ball Ball) (*State, *Renderer, *core.Screen) {
	t.Helper()
	cfg := config.DefaultPongConfig()
	screen := core.NewScreen(w, h)
	st := NewState(cfg.Paddles, rand.New(rand.NewSource(1)), w, h)
	st.Ball = ball
	r := NewRenderer(screen, cfg.Gameplay.ScoreRow)
	r.Board(&st)
	return &st, r, screen
}

// newActiveGame returns a game that has left the opening screen.
func newActiveGame(t *testing.T, w, h int, opts ...Option) (*Game, *core.Screen) {
	t.Helper()
	screen := core.NewScreen(w, h)
	opts = append([]Option{WithSeed(42)}, opts...)
	g := New(screen, config.DefaultPongConfig(), opts...)
	g.Start()
	g.Step(core.KeyOther)
	if g.Phase() != PhaseActive {
		t.Fatalf("Phase() = %v after first key, expected active", g.Phase())
	}
	return g, screen
}

// checkInvariants fails the test if a paddle or the ball has left the grid.
func checkInvariants(t *testing.T, st *State) {
	t.Helper()
	for _, p := range []*Paddle{&st.Left, &st.Right} {
		if p.Row < 0 || p.Row > st.Height-p.Width {
			t.Fatalf("%v paddle row %d outside [0, %d]", p.Side, p.Row, st.Height-p.Width)
		}
	}
	if st.Ball.Row < 0 || st.Ball.Row > st.Height-1 {
		t.Fatalf("ball row %d outside [0, %d]", st.Ball.Row, st.Height-1)
	}
	if st.Ball.Col < 0 || st.Ball.Col > st.Width-1 {
		t.Fatalf("ball col %d outside [0, %d]", st.Ball.Col, st.Width-1)
	}
}
