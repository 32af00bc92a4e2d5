package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a configuration file.
// Search order: customPath -> ~/.trials/configs/<name> -> ./configs/<name> -> embedded default
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// LoadDodger loads the dodger configuration.
func LoadDodger(customPath string) (DodgerConfig, error) {
	return load("dodger.yaml", customPath, defaultDodgerYAML, DefaultDodgerConfig)
}

// LoadBasketball loads the basketball configuration.
func LoadBasketball(customPath string) (BasketballConfig, error) {
	return load("basketball.yaml", customPath, defaultBasketballYAML, DefaultBasketballConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trials", "configs", filename)
}

// ApplyDodgerPreset modifies the config based on a difficulty preset.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 8
		cfg.Spawn.StartingShields = 8
	case DifficultyHard:
		cfg.Player.Health = 4
		cfg.Spawn.StartingShields = 4
	}
}

// ApplyBasketballPreset modifies the config based on a difficulty preset.
func ApplyBasketballPreset(cfg *BasketballConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Throw.Gravity = 0.8
	case DifficultyHard:
		cfg.Baskets = 2
	}
}
