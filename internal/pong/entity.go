// Package pong implements a grid-based Pong game against a CPU opponent.
// The human controls the left paddle, the CPU the right one. All positions
// are whole cells and every tick moves things by at most one cell, so a run
// is fully determined by the RNG seed and the key sequence.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies a paddle by the grid edge it sits against.
type Side int

const (
	Left  Side = iota // human
	Right             // CPU
)

// String returns the side name.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// HorizontalDirection is the ball's column heading.
type HorizontalDirection int

const (
	TowardLeft HorizontalDirection = iota
	TowardRight
)

// VerticalDirection is the ball's row heading.
type VerticalDirection int

const (
	TowardTop VerticalDirection = iota
	TowardBottom
)

// Paddle is a vertical bar that only moves along rows.
type Paddle struct {
	Side   Side
	Width  int // rows covered
	Length int // columns covered
	Row    int // top row
	Col    int // leftmost column
	Score  int
}

// NewPaddle creates a paddle against the given edge, vertically centered.
func NewPaddle(side Side, cfg config.PongPaddles, gridW, gridH int) Paddle {
	p := Paddle{
		Side:   side,
		Width:  cfg.Width,
		Length: cfg.Length,
	}
	p.Layout(cfg.Inset, gridW, gridH)
	p.Row = p.centerRow(gridH)
	return p
}

// Layout places the paddle's column for the current grid width and pulls its
// row back inside the grid. The row is otherwise preserved.
func (p *Paddle) Layout(inset, gridW, gridH int) {
	if p.Side == Left {
		p.Col = inset
	} else {
		p.Col = max(gridW-inset-p.Length, 0)
	}
	p.Row = core.Clamp(p.Row, 0, gridH-p.Width)
}

func (p *Paddle) centerRow(gridH int) int {
	return core.Clamp((gridH-p.Width)/2, 0, gridH-p.Width)
}

// Bottom returns the paddle's last row.
func (p *Paddle) Bottom() int {
	return p.Row + p.Width - 1
}

// StrikeCol returns the column the ball must occupy to bounce off the paddle:
// just right of the left paddle, just left of the right paddle.
func (p *Paddle) StrikeCol() int {
	if p.Side == Left {
		return p.Col + p.Length
	}
	return p.Col - 1
}

// Behind reports whether col is on the paddle's side of its striking edge.
func (p *Paddle) Behind(col int) bool {
	if p.Side == Left {
		return col < p.StrikeCol()
	}
	return col > p.StrikeCol()
}

// Bounds returns the cells the paddle occupies.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.Row, p.Col, p.Width, p.Length)
}

// Ball is a single cell moving diagonally one step per axis per tick.
type Ball struct {
	Row, Col   int
	Horizontal HorizontalDirection
	Vertical   VerticalDirection
}

// NewBall serves a ball from the center column at a random row with random headings.
func NewBall(rng *rand.Rand, gridW, gridH int) Ball {
	b := Ball{Col: gridW / 2}
	if gridH > 0 {
		b.Row = rng.Intn(gridH)
	}
	b.Horizontal = HorizontalDirection(rng.Intn(2))
	b.Vertical = VerticalDirection(rng.Intn(2))
	return b
}

// State is the complete simulation state: both paddles, the ball and the
// grid they live on.
type State struct {
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Width  int
	Height int
}

// NewState lays out fresh paddles and a fresh ball on a grid.
func NewState(cfg config.PongPaddles, rng *rand.Rand, gridW, gridH int) State {
	return State{
		Left:   NewPaddle(Left, cfg, gridW, gridH),
		Right:  NewPaddle(Right, cfg, gridW, gridH),
		Ball:   NewBall(rng, gridW, gridH),
		Width:  gridW,
		Height: gridH,
	}
}

// Paddle returns the paddle on the given side.
func (s *State) Paddle(side Side) *Paddle {
	if side == Left {
		return &s.Left
	}
	return &s.Right
}

// TotalScore returns the combined score of both sides.
func (s *State) TotalScore() int {
	return s.Left.Score + s.Right.Score
}
