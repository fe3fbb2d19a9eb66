package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.tui-pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Missing keys keep their default values.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultPongConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		candidate := DefaultPongConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-pong", filename)
}
