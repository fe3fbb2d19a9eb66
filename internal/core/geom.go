// Package core provides the backend-independent building blocks of the game:
// color roles, key codes, cell geometry, the screen buffer and the tick scheduler.
// It has no terminal dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned block of cells addressed by its top-left cell.
type Rect struct {
	Row, Col   int // top-left cell
	Rows, Cols int // extent in cells
}

// NewRect creates a rectangle covering rows x cols cells from (row, col).
func NewRect(row, col, rows, cols int) Rect {
	return Rect{Row: row, Col: col, Rows: rows, Cols: cols}
}

// Bottom returns the last row covered by the rectangle.
func (r Rect) Bottom() int {
	return r.Row + r.Rows - 1
}

// Right returns the last column covered by the rectangle.
func (r Rect) Right() int {
	return r.Col + r.Cols - 1
}

// Contains returns true if the cell (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row <= r.Bottom() && col >= r.Col && col <= r.Right()
}

// Each calls fn for every cell of the rectangle, row by row.
func (r Rect) Each(fn func(row, col int)) {
	for row := r.Row; row <= r.Bottom(); row++ {
		for col := r.Col; col <= r.Right(); col++ {
			fn(row, col)
		}
	}
}

// Clamp restricts a value to be within [lo, hi].
// If hi < lo, lo wins.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
