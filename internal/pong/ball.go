package pong

// MoveBall advances the ball one tick. Each axis either steps one cell or,
// when blocked, flips its heading without moving; the new heading applies
// from the next tick. The column axis resolves first.
func MoveBall(st *State, r *Renderer) {
	b := &st.Ball

	switch b.Horizontal {
	case TowardLeft:
		if BallInFrontOf(&st.Left, b) {
			b.Horizontal = TowardRight
		} else {
			r.MoveBall(st, 0, -1)
		}
	case TowardRight:
		if BallInFrontOf(&st.Right, b) {
			b.Horizontal = TowardLeft
		} else {
			r.MoveBall(st, 0, 1)
		}
	}

	switch b.Vertical {
	case TowardTop:
		if BallHitTop(b) || BallAdjacentBelow(&st.Left, b) || BallAdjacentBelow(&st.Right, b) {
			b.Vertical = TowardBottom
		} else {
			r.MoveBall(st, -1, 0)
		}
	case TowardBottom:
		if BallHitBottom(b, st.Height) || BallAdjacentAbove(&st.Left, b) || BallAdjacentAbove(&st.Right, b) {
			b.Vertical = TowardTop
		} else {
			r.MoveBall(st, 1, 0)
		}
	}
}

// ScoringSide reports which side scored, if the ball has left the grid.
// Past the left edge the CPU scores; past the right edge the human does.
func ScoringSide(st *State) (Side, bool) {
	switch {
	case st.Ball.Col < 0:
		return Right, true
	case st.Ball.Col > st.Width-1:
		return Left, true
	}
	return Left, false
}
