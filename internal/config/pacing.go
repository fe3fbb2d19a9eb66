package config

import "time"

// Delay returns the tick interval for the given combined score.
// It decreases linearly per point and never drops below MinDelayMs.
func (p PongPacing) Delay(totalScore int) time.Duration {
	ms := p.BaseDelayMs - p.PerPointMs*max(totalScore, 0)
	ms = max(ms, p.MinDelayMs, 1)
	return time.Duration(ms) * time.Millisecond
}

// ApplyPongPreset modifies the pacing based on a speed preset.
// Paddle geometry and the CPU's accuracy are untouched.
func ApplyPongPreset(cfg *PongConfig, preset SpeedPreset) {
	switch preset {
	case SpeedEasy:
		cfg.Pacing.BaseDelayMs = 80
		cfg.Pacing.PerPointMs = 2
	case SpeedNormal:
		cfg.Pacing.BaseDelayMs = 60
		cfg.Pacing.PerPointMs = 2
	case SpeedHard:
		cfg.Pacing.BaseDelayMs = 45
		cfg.Pacing.PerPointMs = 1
	case SpeedFixed:
		cfg.Pacing.PerPointMs = 0
	}
	cfg.Pacing.MinDelayMs = min(cfg.Pacing.MinDelayMs, cfg.Pacing.BaseDelayMs)
}
