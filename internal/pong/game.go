package pong

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseOpening  Phase = iota // splash screen, waiting for a key
	PhaseActive                // ticking
	PhaseRoundWon              // result shown, waiting for a key
	PhaseQuit                  // terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseActive:
		return "active"
	case PhaseRoundWon:
		return "round-won"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// RoundResult describes a finished round.
type RoundResult struct {
	Winner     Side
	LeftScore  int
	RightScore int
	Ticks      int
	Duration   time.Duration
	FinishedAt time.Time
}

// RoundRecorder persists finished rounds.
type RoundRecorder interface {
	RecordRound(RoundResult) error
}

// Game owns the simulation state and runs the phase machine.
// It draws onto a Canvas but never reads input or sleeps itself;
// a driver feeds it keys and decides when to tick.
type Game struct {
	cfg      config.PongConfig
	canvas   core.Canvas
	render   *Renderer
	rng      *rand.Rand
	logger   *log.Logger
	recorder RoundRecorder
	now      func() time.Time

	state      State
	phase      Phase
	lastWinner Side
	roundTicks int
	roundStart time.Time
}

// Option customizes a Game.
type Option func(*Game)

// WithSeed seeds the game's RNG for reproducible play.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for round and resize events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder stores every finished round.
func WithRecorder(rec RoundRecorder) Option {
	return func(g *Game) {
		g.recorder = rec
	}
}

// WithClock overrides the wall clock used for round timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New creates a game drawing onto canvas. Call Start before stepping.
func New(canvas core.Canvas, cfg config.PongConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		canvas: canvas,
		render: NewRenderer(canvas, cfg.Gameplay.ScoreRow),
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Start paints the opening screen and waits for the first key.
func (g *Game) Start() {
	g.phase = PhaseOpening
	g.state.Width, g.state.Height = g.canvas.Size()
	g.repaintWaiting()
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Waiting reports whether the game is blocked on a keypress rather than ticking.
func (g *Game) Waiting() bool {
	return g.phase == PhaseOpening || g.phase == PhaseRoundWon
}

// State returns a copy of the simulation state.
func (g *Game) State() State {
	return g.state
}

// TickInterval returns the pacing delay for the current combined score.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Pacing.Delay(g.state.TotalScore())
}

// Step feeds one key to the game. While waiting, KeyNone is ignored and any
// other keypress except Escape starts a round. While active, each call is one tick.
// On a grid too small to play, only Escape and resizes have an effect.
func (g *Game) Step(key core.Key) {
	switch g.phase {
	case PhaseOpening, PhaseRoundWon:
		g.waitStep(key)
	case PhaseActive:
		g.tick(key)
	}
}

func (g *Game) waitStep(key core.Key) {
	switch {
	case key == core.KeyEscape:
		g.phase = PhaseQuit
	case key == core.KeyResize:
		g.relayout()
		g.repaintWaiting()
	case key.IsPress() && g.playable():
		g.newRound()
	}
}

// repaintWaiting redraws the screen the game is waiting on.
func (g *Game) repaintWaiting() {
	switch {
	case !g.playable():
		g.render.TooSmall(g.state.Width, g.state.Height)
	case g.phase == PhaseOpening:
		g.render.Opening(g.state.Width, g.state.Height)
	default:
		g.render.Board(&g.state)
		g.render.RoundOver(&g.state, g.lastWinner)
	}
}

// playable reports whether the grid fits a full-height paddle and, across,
// both paddles with at least one free column each side of the center line.
func (g *Game) playable() bool {
	p := g.cfg.Paddles
	return g.state.Height >= p.Width && g.state.Width >= 2*(p.Inset+p.Length)+3
}

// newRound recreates paddles and ball from the current grid size and
// repaints the board. Scores start from zero.
func (g *Game) newRound() {
	w, h := g.canvas.Size()
	g.state = NewState(g.cfg.Paddles, g.rng, w, h)
	g.phase = PhaseActive
	g.roundTicks = 0
	g.roundStart = g.now()
	g.render.Board(&g.state)
}

// tick runs one active-play iteration.
func (g *Game) tick(key core.Key) {
	switch key {
	case core.KeyEscape:
		g.phase = PhaseQuit
		return
	case core.KeyResize:
		g.relayout()
		if !g.playable() {
			g.render.TooSmall(g.state.Width, g.state.Height)
		} else {
			g.render.Board(&g.state)
		}
	}

	// Play is suspended until the grid grows back.
	if !g.playable() {
		return
	}

	MoveHumanPaddle(&g.state, key, g.render)
	MoveCPUPaddle(&g.state, g.rng, g.render)
	MoveBall(&g.state, g.render)
	g.roundTicks++

	if side, ok := ScoringSide(&g.state); ok {
		g.score(side)
	}
}

// score credits a point, serves a new ball and checks for a round win.
func (g *Game) score(side Side) {
	p := g.state.Paddle(side)
	p.Score++

	old := g.state.Ball
	g.state.Ball = NewBall(g.rng, g.state.Width, g.state.Height)
	g.render.PlaceBall(&g.state, old)
	g.render.Scores(&g.state)

	if p.Score >= g.cfg.Gameplay.WinScore {
		g.winRound(side)
	}
}

func (g *Game) winRound(winner Side) {
	now := g.now()
	result := RoundResult{
		Winner:     winner,
		LeftScore:  g.state.Left.Score,
		RightScore: g.state.Right.Score,
		Ticks:      g.roundTicks,
		Duration:   now.Sub(g.roundStart),
		FinishedAt: now,
	}
	g.logger.Info("round finished",
		"winner", winner,
		"left", result.LeftScore,
		"right", result.RightScore,
		"ticks", result.Ticks,
	)
	if g.recorder != nil {
		if err := g.recorder.RecordRound(result); err != nil {
			g.logger.Warn("could not record round", "error", err)
		}
	}

	g.state.Left.Score = 0
	g.state.Right.Score = 0
	g.lastWinner = winner
	g.phase = PhaseRoundWon
	g.render.RoundOver(&g.state, winner)
}

// relayout adapts the state to a new grid size. The right paddle is
// re-anchored and re-centered; the left paddle and the ball keep their
// positions unless the grid shrank past them. Scores are untouched.
func (g *Game) relayout() {
	w, h := g.canvas.Size()
	g.logger.Debug("grid resized", "width", w, "height", h)

	st := &g.state
	st.Width, st.Height = w, h
	st.Left.Layout(g.cfg.Paddles.Inset, w, h)
	st.Right.Layout(g.cfg.Paddles.Inset, w, h)
	st.Right.Row = st.Right.centerRow(h)
	st.Ball.Row = core.Clamp(st.Ball.Row, 0, h-1)
	st.Ball.Col = core.Clamp(st.Ball.Col, 0, w-1)
}
