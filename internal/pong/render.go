package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Banner lines of the opening screen.
var openingBanner = []string{
	"@@@@ @",
	"@@    @@",
	"@@    @@",
	"@@  @@   @@ @  @ @@@@   @@ @@",
	"@@     @@   @@ @@   @@ @@   @@",
	"@@     @@   @@ @@   @@ @@   @@",
	"@@     @@   @@ @@   @@ @@   @@",
	"@@      @@ @@  @@   @@  @@ @@@",
	"                            @@",
	"                         @@ @",
}

// Instruction lines and their offsets below the banner origin.
var openingHelp = []struct {
	offset int
	text   string
}{
	{15, "   PRESS ANY KEY TO START"},
	{16, "      PReSs eSc To EXiT"},
	{20, "   Press Up Arrow to Move Up"},
	{21, " Press Down Arrow to Move Down"},
}

// Round result labels.
const (
	WinnerLabel = "WINNER!"
	LoserLabel  = "LOSER!"
)

// TooSmallNotice replaces the board while the grid is below the playable size.
const TooSmallNotice = "TERMINAL TOO SMALL"

// Renderer keeps a Canvas in sync with the game state by repainting only
// the cells that change. Moves always run erase-old, update, draw-new.
type Renderer struct {
	canvas   core.Canvas
	scoreRow int
}

// NewRenderer creates a renderer drawing onto canvas.
// Scores are printed on scoreRow.
func NewRenderer(canvas core.Canvas, scoreRow int) *Renderer {
	return &Renderer{canvas: canvas, scoreRow: scoreRow}
}

// centerCol returns the column of the center line.
func centerCol(width int) int {
	return width / 2
}

// scoreCol returns the column where the side's score label starts.
func scoreCol(side Side, width int) int {
	if side == Left {
		return width / 4
	}
	return width - width/4
}

// Background fills the grid and draws the center line.
func (r *Renderer) Background(width, height int) {
	center := centerCol(width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if col == center {
				r.canvas.SetCell(row, col, core.ColorLine)
			} else {
				r.canvas.SetCell(row, col, core.ColorBackground)
			}
		}
	}
}

// Scores prints both paddles' scores.
func (r *Renderer) Scores(st *State) {
	for _, side := range []Side{Left, Right} {
		score := strconv.Itoa(st.Paddle(side).Score)
		r.canvas.SetText(r.scoreRow, scoreCol(side, st.Width), score, core.ColorText)
	}
}

// Board repaints everything: background, scores, paddles and ball.
func (r *Renderer) Board(st *State) {
	r.Background(st.Width, st.Height)
	r.Scores(st)
	r.drawPaddle(&st.Left)
	r.drawPaddle(&st.Right)
	r.drawBall(&st.Ball)
}

// Opening paints the splash screen.
func (r *Renderer) Opening(width, height int) {
	r.Background(width, height)
	row, col := height/10, width/8
	for i, line := range openingBanner {
		r.canvas.SetText(row+1+i, col, line, core.ColorText)
	}
	for _, h := range openingHelp {
		r.canvas.SetText(row+h.offset, col, h.text, core.ColorText)
	}
}

// RoundOver announces the result over each side's score.
func (r *Renderer) RoundOver(st *State, winner Side) {
	r.canvas.SetText(r.scoreRow, scoreCol(winner, st.Width), WinnerLabel, core.ColorText)
	r.canvas.SetText(r.scoreRow, scoreCol(winner.Opponent(), st.Width), LoserLabel, core.ColorText)
}

// TooSmall blanks the grid and shows a notice while it cannot fit a game.
func (r *Renderer) TooSmall(width, height int) {
	for row := range height {
		for col := range width {
			r.canvas.SetCell(row, col, core.ColorBackground)
		}
	}
	r.canvas.SetText(height/2, 0, TooSmallNotice, core.ColorText)
}

// MovePaddle shifts a paddle by dRow rows.
func (r *Renderer) MovePaddle(st *State, p *Paddle, dRow int) {
	p.Bounds().Each(func(row, col int) {
		r.restore(st, row, col)
	})
	p.Row += dRow
	r.drawPaddle(p)
}

// MoveBall shifts the ball by (dRow, dCol).
func (r *Renderer) MoveBall(st *State, dRow, dCol int) {
	r.restore(st, st.Ball.Row, st.Ball.Col)
	st.Ball.Row += dRow
	st.Ball.Col += dCol
	r.drawBall(&st.Ball)
}

// PlaceBall erases a ball that was replaced and draws the current one.
func (r *Renderer) PlaceBall(st *State, old Ball) {
	r.restore(st, old.Row, old.Col)
	r.drawBall(&st.Ball)
}

func (r *Renderer) drawPaddle(p *Paddle) {
	p.Bounds().Each(func(row, col int) {
		r.canvas.SetCell(row, col, core.ColorLine)
	})
}

func (r *Renderer) drawBall(b *Ball) {
	r.canvas.SetCell(b.Row, b.Col, core.ColorBall)
}

// restore repaints what lies under a moving object: the center line,
// a score label, or plain background.
func (r *Renderer) restore(st *State, row, col int) {
	if col == centerCol(st.Width) {
		r.canvas.SetCell(row, col, core.ColorLine)
		return
	}
	if row == r.scoreRow {
		for _, side := range []Side{Left, Right} {
			start := scoreCol(side, st.Width)
			if col >= start && col < start+len(strconv.Itoa(st.Paddle(side).Score)) {
				r.canvas.SetCell(row, col, core.ColorBackground)
				r.Scores(st)
				return
			}
		}
	}
	r.canvas.SetCell(row, col, core.ColorBackground)
}
