package core

// Color is a logical color role for a screen cell.
// Backends map roles to concrete terminal colors.
type Color uint8

// Color roles used by the renderer.
const (
	ColorBackground Color = iota // playfield fill
	ColorLine                    // center line and paddles
	ColorBall                    // the ball
	ColorText                    // score digits and banners
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorLine:
		return "line"
	case ColorBall:
		return "ball"
	case ColorText:
		return "text"
	default:
		return "unknown"
	}
}
