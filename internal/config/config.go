// Package config provides YAML-based game configuration loading and
// speed presets for the pong game.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all tunable parameters of the game.
type PongConfig struct {
	Paddles  PongPaddles  `yaml:"paddles"`
	Gameplay PongGameplay `yaml:"gameplay"`
	Pacing   PongPacing   `yaml:"pacing"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Width  int `yaml:"width"`  // cells along the vertical axis
	Length int `yaml:"length"` // thickness in columns
	Inset  int `yaml:"inset"`  // columns between the grid edge and the paddle
}

// PongGameplay defines scoring and layout.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
	ScoreRow int `yaml:"score_row"`
}

// PongPacing defines how fast the simulation ticks.
// The tick interval shrinks linearly with the combined score.
type PongPacing struct {
	BaseDelayMs int `yaml:"base_delay_ms"`
	PerPointMs  int `yaml:"per_point_ms"`
	MinDelayMs  int `yaml:"min_delay_ms"`
}

// Validate reports the first setting that would make the game unplayable.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Paddles.Width < 1 {
		errs = append(errs, fmt.Errorf("paddles.width must be positive, got %d", c.Paddles.Width))
	}
	if c.Paddles.Length < 1 {
		errs = append(errs, fmt.Errorf("paddles.length must be positive, got %d", c.Paddles.Length))
	}
	if c.Paddles.Inset < 0 {
		errs = append(errs, fmt.Errorf("paddles.inset must not be negative, got %d", c.Paddles.Inset))
	}
	if c.Gameplay.WinScore < 1 {
		errs = append(errs, fmt.Errorf("gameplay.win_score must be positive, got %d", c.Gameplay.WinScore))
	}
	if c.Gameplay.ScoreRow < 0 {
		errs = append(errs, fmt.Errorf("gameplay.score_row must not be negative, got %d", c.Gameplay.ScoreRow))
	}
	if c.Pacing.MinDelayMs < 1 {
		errs = append(errs, fmt.Errorf("pacing.min_delay_ms must be positive, got %d", c.Pacing.MinDelayMs))
	}
	if c.Pacing.BaseDelayMs < c.Pacing.MinDelayMs {
		errs = append(errs, fmt.Errorf("pacing.base_delay_ms (%d) must be at least min_delay_ms (%d)",
			c.Pacing.BaseDelayMs, c.Pacing.MinDelayMs))
	}
	if c.Pacing.PerPointMs < 0 {
		errs = append(errs, fmt.Errorf("pacing.per_point_ms must not be negative, got %d", c.Pacing.PerPointMs))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SpeedPreset represents a named pacing level.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
	SpeedFixed  SpeedPreset = "fixed"
)

// ParseSpeedPreset validates a preset name. The empty string means "keep the config".
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(s); p {
	case "", SpeedEasy, SpeedNormal, SpeedHard, SpeedFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown speed preset %q (want easy, normal, hard or fixed)", s)
	}
}
