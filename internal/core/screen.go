package core

import (
	"strings"
)

// Cell is one character position of the screen.
// Solid cells hold a space and are colored by their background.
type Cell struct {
	Rune  rune
	Color Color
	Solid bool
}

// Screen is a 2D cell buffer implementing Canvas.
// It decouples game rendering from the terminal: the game paints cells and
// the platform decides how to present them.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for row := range s.cells {
		s.cells[row] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Size implements Canvas.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for row := 0; row < min(oldH, height); row++ {
		copy(s.cells[row], oldCells[row][:min(oldW, width)])
	}
}

// Clear resets every cell to a background-colored space.
func (s *Screen) Clear() {
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col] = Cell{Rune: ' ', Color: ColorBackground, Solid: true}
		}
	}
}

func (s *Screen) inBounds(row, col int) bool {
	return row >= 0 && row < s.height && col >= 0 && col < s.width
}

// SetCell paints a solid cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(row, col int, c Color) {
	if !s.inBounds(row, col) {
		return
	}
	s.cells[row][col] = Cell{Rune: ' ', Color: c, Solid: true}
}

// SetText writes text horizontally starting at (row, col).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) SetText(row, col int, text string, c Color) {
	i := 0
	for _, r := range text {
		if s.inBounds(row, col+i) {
			s.cells[row][col+i] = Cell{Rune: r, Color: c}
		}
		i++
	}
}

// GetCell returns the cell at (row, col).
// Returns a background cell for out-of-bounds coordinates.
func (s *Screen) GetCell(row, col int) Cell {
	if !s.inBounds(row, col) {
		return Cell{Rune: ' ', Color: ColorBackground, Solid: true}
	}
	return s.cells[row][col]
}

// Equal reports whether two screens hold identical contents.
func (s *Screen) Equal(other *Screen) bool {
	if s.width != other.width || s.height != other.height {
		return false
	}
	for row := range s.cells {
		for col := range s.cells[row] {
			if s.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the screen.
func (s *Screen) Clone() *Screen {
	c := &Screen{width: s.width, height: s.height}
	c.allocate()
	for row := range s.cells {
		copy(c.cells[row], s.cells[row])
	}
	return c
}

// String converts the screen to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for row := 0; row < s.height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < s.width; col++ {
			sb.WriteRune(s.cells[row][col].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[row] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Canvas = (*Screen)(nil)
