package pong

import "testing"

func testPaddle(side Side, row, col int) Paddle {
	return Paddle{Side: side, Width: 5, Length: 2, Row: row, Col: col}
}

func TestPaddleEdges(t *testing.T) {
	p := testPaddle(Left, 0, 1)
	if !PaddleHitTop(&p) {
		t.Error("paddle at row 0 should hit top")
	}
	if PaddleHitBottom(&p, 20) {
		t.Error("paddle at row 0 should not hit bottom of a 20-row grid")
	}

	p.Row = 15
	if PaddleHitTop(&p) {
		t.Error("paddle at row 15 should not hit top")
	}
	if !PaddleHitBottom(&p, 20) {
		t.Error("paddle covering rows 15-19 should hit bottom of a 20-row grid")
	}
}

func TestBallEdges(t *testing.T) {
	b := Ball{Row: 0, Col: 5}
	if !BallHitTop(&b) || BallHitBottom(&b, 20) {
		t.Error("ball at row 0 should hit top only")
	}
	b.Row = 19
	if BallHitTop(&b) || !BallHitBottom(&b, 20) {
		t.Error("ball at row 19 should hit bottom only")
	}
}

func TestStrikeCol(t *testing.T) {
	left := testPaddle(Left, 7, 1)
	if got := left.StrikeCol(); got != 3 {
		t.Errorf("left StrikeCol() = %d, expected 3", got)
	}

	right := testPaddle(Right, 7, 37) // 40 wide grid, inset 1
	if got := right.StrikeCol(); got != 36 {
		t.Errorf("right StrikeCol() = %d, expected 36", got)
	}
}

func TestBallInFrontOf(t *testing.T) {
	left := testPaddle(Left, 7, 1)
	right := testPaddle(Right, 7, 37)

	tests := []struct {
		name     string
		paddle   Paddle
		ball     Ball
		expected bool
	}{
		{"left top row", left, Ball{Row: 7, Col: 3}, true},
		{"left bottom row", left, Ball{Row: 11, Col: 3}, true},
		{"left one row above", left, Ball{Row: 6, Col: 3}, false},
		{"left one row below", left, Ball{Row: 12, Col: 3}, false},
		{"left wrong column", left, Ball{Row: 9, Col: 4}, false},
		{"right middle", right, Ball{Row: 9, Col: 36}, true},
		{"right behind", right, Ball{Row: 9, Col: 37}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BallInFrontOf(&tc.paddle, &tc.ball); got != tc.expected {
				t.Errorf("BallInFrontOf() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBallAdjacency(t *testing.T) {
	left := testPaddle(Left, 7, 1)
	right := testPaddle(Right, 7, 37)

	tests := []struct {
		name         string
		paddle       Paddle
		ball         Ball
		above, below bool
	}{
		{"left above within span", left, Ball{Row: 6, Col: 2}, true, false},
		{"left above at striking column", left, Ball{Row: 6, Col: 3}, false, false},
		{"left below within span", left, Ball{Row: 12, Col: 1}, false, true},
		{"left below past the edge", left, Ball{Row: 12, Col: 0}, false, true},
		{"left two rows below", left, Ball{Row: 13, Col: 1}, false, false},
		{"right above within span", right, Ball{Row: 6, Col: 38}, true, false},
		{"right above in the field", right, Ball{Row: 6, Col: 36}, false, false},
		{"right below within span", right, Ball{Row: 12, Col: 37}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BallAdjacentAbove(&tc.paddle, &tc.ball); got != tc.above {
				t.Errorf("BallAdjacentAbove() = %v, expected %v", got, tc.above)
			}
			if got := BallAdjacentBelow(&tc.paddle, &tc.ball); got != tc.below {
				t.Errorf("BallAdjacentBelow() = %v, expected %v", got, tc.below)
			}
		})
	}
}

func TestBallAdjacentBelowUsesOwnWidth(t *testing.T) {
	// Paddles of different widths must each use their own bottom edge.
	right := Paddle{Side: Right, Width: 3, Length: 2, Row: 4, Col: 37}
	ball := Ball{Row: 7, Col: 38}

	if !BallAdjacentBelow(&right, &ball) {
		t.Error("ball one row below a 3-row right paddle should be adjacent")
	}
	ball.Row = 9
	if BallAdjacentBelow(&right, &ball) {
		t.Error("ball at row 9 is not adjacent to a paddle ending at row 6")
	}
}
