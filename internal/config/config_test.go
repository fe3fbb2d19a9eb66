package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPongConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("gameplay:\n  win_score: 3\npacing:\n  base_delay_ms: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("WinScore = %d, expected 3", cfg.Gameplay.WinScore)
	}
	if cfg.Pacing.BaseDelayMs != 40 {
		t.Errorf("BaseDelayMs = %d, expected 40", cfg.Pacing.BaseDelayMs)
	}
	// Unset keys keep defaults
	if cfg.Paddles.Width != 5 {
		t.Errorf("Paddles.Width = %d, expected default 5", cfg.Paddles.Width)
	}
}

func TestLoadPongErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPong() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paddles:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPong(path)
	if err == nil || !strings.Contains(err.Error(), "paddles.width") {
		t.Errorf("LoadPong() error = %v, expected paddles.width validation error", err)
	}
}

func TestPacingDelay(t *testing.T) {
	p := PongPacing{BaseDelayMs: 60, PerPointMs: 2, MinDelayMs: 20}

	tests := []struct {
		score    int
		expected time.Duration
	}{
		{0, 60 * time.Millisecond},
		{5, 50 * time.Millisecond},
		{19, 22 * time.Millisecond},
		{20, 20 * time.Millisecond},
		{100, 20 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := p.Delay(tc.score); got != tc.expected {
			t.Errorf("Delay(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	// Never negative, even with a broken floor
	broken := PongPacing{BaseDelayMs: 10, PerPointMs: 5, MinDelayMs: 0}
	if got := broken.Delay(50); got <= 0 {
		t.Errorf("Delay should stay positive, got %v", got)
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, SpeedFixed)
	if cfg.Pacing.Delay(0) != cfg.Pacing.Delay(18) {
		t.Error("fixed preset should not speed up with score")
	}

	easy, hard := DefaultPongConfig(), DefaultPongConfig()
	ApplyPongPreset(&easy, SpeedEasy)
	ApplyPongPreset(&hard, SpeedHard)
	if easy.Pacing.Delay(0) <= hard.Pacing.Delay(0) {
		t.Errorf("easy (%v) should tick slower than hard (%v)", easy.Pacing.Delay(0), hard.Pacing.Delay(0))
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}
}

func TestParseSpeedPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseSpeedPreset(s); err != nil {
			t.Errorf("ParseSpeedPreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseSpeedPreset("insane"); err == nil {
		t.Error("ParseSpeedPreset should reject unknown names")
	}
}
