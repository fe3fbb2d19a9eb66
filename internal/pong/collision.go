package pong

// PaddleHitTop reports whether the paddle touches the top edge.
func PaddleHitTop(p *Paddle) bool {
	return p.Row == 0
}

// PaddleHitBottom reports whether the paddle touches the bottom edge.
func PaddleHitBottom(p *Paddle, gridH int) bool {
	return p.Row+p.Width-1 == gridH-1
}

// BallHitTop reports whether the ball is on the top row.
func BallHitTop(b *Ball) bool {
	return b.Row == 0
}

// BallHitBottom reports whether the ball is on the bottom row.
func BallHitBottom(b *Ball, gridH int) bool {
	return b.Row == gridH-1
}

// BallAdjacentAbove reports whether the ball sits in the row just above the
// paddle while still within its horizontal span.
func BallAdjacentAbove(p *Paddle, b *Ball) bool {
	return b.Row == p.Row-1 && p.Behind(b.Col)
}

// BallAdjacentBelow reports whether the ball sits in the row just below the
// paddle while still within its horizontal span.
func BallAdjacentBelow(p *Paddle, b *Ball) bool {
	return b.Row == p.Row+p.Width && p.Behind(b.Col)
}

// BallInFrontOf reports whether the ball is on the paddle's striking column
// and within its rows: the return hit.
func BallInFrontOf(p *Paddle, b *Ball) bool {
	return b.Col == p.StrikeCol() && b.Row >= p.Row && b.Row <= p.Bottom()
}
