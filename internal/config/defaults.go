package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddles: PongPaddles{
			Width:  5,
			Length: 2,
			Inset:  1,
		},
		Gameplay: PongGameplay{
			WinScore: 10,
			ScoreRow: 3,
		},
		Pacing: PongPacing{
			BaseDelayMs: 60,
			PerPointMs:  2,
			MinDelayMs:  20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
