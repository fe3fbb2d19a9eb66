package core

// RuntimeConfig contains what a frontend knows before the game starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in cells
	ScreenH int   // Screen height in cells
	Seed    int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
