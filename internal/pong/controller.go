package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// cpuAccuracy is the percent chance per tick that the CPU reacts at all.
const cpuAccuracy = 95

// MoveHumanPaddle moves the left paddle one row for an Up or Down key.
// The paddle stops at the grid edges and never steps into the ball's cell.
func MoveHumanPaddle(st *State, key core.Key, r *Renderer) {
	p := &st.Left
	switch key {
	case core.KeyUp:
		if !PaddleHitTop(p) && !BallAdjacentAbove(p, &st.Ball) {
			r.MovePaddle(st, p, -1)
		}
	case core.KeyDown:
		if !PaddleHitBottom(p, st.Height) && !BallAdjacentBelow(p, &st.Ball) {
			r.MovePaddle(st, p, 1)
		}
	}
}

// MoveCPUPaddle tracks the ball with the right paddle while the ball is
// heading its way. Each tick has a small chance of no reaction at all.
func MoveCPUPaddle(st *State, rng *rand.Rand, r *Renderer) {
	if rng.Intn(100) >= cpuAccuracy || st.Ball.Horizontal != TowardRight {
		return
	}

	// Both checks read the position from before this tick's move.
	p, b := &st.Right, &st.Ball
	up, down := b.Row < p.Row, b.Row >= p.Bottom()
	if up && !PaddleHitTop(p) && !BallAdjacentAbove(p, b) {
		r.MovePaddle(st, p, -1)
	}
	if down && !PaddleHitBottom(p, st.Height) && !BallAdjacentBelow(p, b) {
		r.MovePaddle(st, p, 1)
	}
}
