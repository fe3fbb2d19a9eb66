package core

import "context"

// Canvas is the drawing surface the game renders onto.
// Out-of-range coordinates must be ignored.
type Canvas interface {
	// SetCell paints the cell at (row, col) with a solid color.
	SetCell(row, col int, c Color)
	// SetText writes text starting at (row, col) in the given color.
	SetText(row, col int, text string, c Color)
	// Size reports the current grid dimensions.
	Size() (width, height int)
}

// Display is a full terminal backend: a Canvas plus input and presentation.
type Display interface {
	Canvas

	// PollKey returns the most recent pending key, or KeyNone without blocking.
	// A pending resize is reported as KeyResize before any keypress.
	PollKey() Key

	// WaitKey blocks until a key or resize arrives, or ctx is done.
	WaitKey(ctx context.Context) (Key, error)

	// Flush presents everything drawn since the last flush.
	Flush()
}
