package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestBoardLayout(t *testing.T) {
	_, _, screen := newTestState(t, 40, 20, Ball{Row: 15, Col: 25})

	tests := []struct {
		name     string
		row, col int
		color    core.Color
	}{
		{"center line", 0, 20, core.ColorLine},
		{"background", 0, 5, core.ColorBackground},
		{"left paddle top", 7, 1, core.ColorLine},
		{"left paddle bottom", 11, 2, core.ColorLine},
		{"right paddle top", 7, 37, core.ColorLine},
		{"right paddle bottom", 11, 38, core.ColorLine},
		{"right of right paddle", 9, 39, core.ColorBackground},
		{"ball", 15, 25, core.ColorBall},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c := screen.GetCell(tc.row, tc.col); c.Color != tc.color {
				t.Errorf("cell (%d, %d) = %v, expected %v", tc.row, tc.col, c.Color, tc.color)
			}
		})
	}

	// Scores on row 3 at W/4 and W - W/4
	if c := screen.GetCell(3, 10); c.Rune != '0' || c.Color != core.ColorText {
		t.Errorf("left score cell = %+v, expected text '0'", c)
	}
	if c := screen.GetCell(3, 30); c.Rune != '0' {
		t.Errorf("right score cell = %+v, expected '0'", c)
	}
}

func TestBoardRepaintIsIdempotent(t *testing.T) {
	st, r, screen := newTestState(t, 40, 20, Ball{Row: 3, Col: 10})
	st.Left.Score = 4
	st.Right.Score = 7

	r.Board(st)
	first := screen.Clone()
	r.Board(st)

	if !screen.Equal(first) {
		t.Errorf("second repaint changed the screen:\n%s\n---\n%s", first, screen)
	}
}

func TestIncrementalMatchesFullRepaint(t *testing.T) {
	// Move the ball and both paddles around, then compare against a fresh repaint.
	st, r, screen := newTestState(t, 40, 20, Ball{Row: 1, Col: 8, Horizontal: TowardRight, Vertical: TowardBottom})
	st.Left.Score = 2

	r.Board(st)
	for range 30 {
		MoveHumanPaddle(st, core.KeyUp, r)
		r.MovePaddle(st, &st.Right, 0)
		MoveBall(st, r)
	}

	incremental := screen.Clone()
	fresh := core.NewScreen(40, 20)
	NewRenderer(fresh, 3).Board(st)

	if !incremental.Equal(fresh) {
		t.Errorf("incremental repaint left stale cells:\n%s\n--- expected ---\n%s", incremental, fresh)
	}
}

func TestRestoreScoreUnderBall(t *testing.T) {
	st, r, screen := newTestState(t, 40, 20, Ball{Row: 3, Col: 9, Horizontal: TowardRight, Vertical: TowardTop})
	st.Left.Score = 5
	r.Board(st)

	// Ball passes over the left score digit at (3, 10)
	r.MoveBall(st, 0, 1)
	if c := screen.GetCell(3, 10); c.Color != core.ColorBall {
		t.Fatalf("cell (3, 10) = %+v, expected the ball", c)
	}
	r.MoveBall(st, 0, 1)

	if c := screen.GetCell(3, 10); c.Rune != '5' || c.Color != core.ColorText {
		t.Errorf("cell (3, 10) = %+v, expected the score digit restored", c)
	}
}

func TestOpeningScreen(t *testing.T) {
	screen := core.NewScreen(80, 30)
	NewRenderer(screen, 3).Opening(80, 30)

	text := screen.String()
	for _, want := range []string{"PRESS ANY KEY TO START", "PReSs eSc To EXiT", "Press Up Arrow to Move Up"} {
		if !strings.Contains(text, want) {
			t.Errorf("opening screen missing %q", want)
		}
	}
	if c := screen.GetCell(0, 40); c.Color != core.ColorLine {
		t.Errorf("opening screen should keep the center line, got %v", c.Color)
	}
}

func TestRoundOverLabels(t *testing.T) {
	st, r, screen := newTestState(t, 40, 20, Ball{Row: 15, Col: 25})

	r.RoundOver(st, Right)

	row := screen.Row(3)
	if !strings.HasPrefix(row[10:], LoserLabel) {
		t.Errorf("left label = %q, expected %q", row[10:16], LoserLabel)
	}
	if !strings.HasPrefix(row[30:], WinnerLabel) {
		t.Errorf("right label = %q, expected %q", row[30:], WinnerLabel)
	}
}

func TestTooSmallScreen(t *testing.T) {
	st, r, screen := newTestState(t, 40, 6, Ball{Row: 2, Col: 25})
	r.Board(st)

	r.TooSmall(40, 6)

	if row := screen.Row(3); !strings.HasPrefix(row, TooSmallNotice) {
		t.Errorf("row 3 = %q, expected the notice", row)
	}
	if c := screen.GetCell(0, 20); c.Color != core.ColorBackground {
		t.Errorf("center line should be cleared, got %v", c.Color)
	}
}
