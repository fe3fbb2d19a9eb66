package core

// Key is a backend-independent key code delivered to the game once per tick.
type Key int

const (
	KeyNone   Key = iota // no key pending
	KeyUp                // Up arrow, W
	KeyDown              // Down arrow, S
	KeyEscape            // Esc, Ctrl+C
	KeyResize            // the grid changed size
	KeyOther             // anything else; still counts as "any key"
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEscape:
		return "Escape"
	case KeyResize:
		return "Resize"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// IsPress reports whether the key is a real keypress, as opposed to
// the absence of input or a resize notification.
func (k Key) IsPress() bool {
	return k != KeyNone && k != KeyResize
}
