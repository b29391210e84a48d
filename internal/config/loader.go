package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a Frogger variant.
// Search order: customPath -> ~/.frogger/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
//
// Every source is decoded on top of the variant's hardcoded defaults, so a
// partial YAML file only overrides the keys it names. The result is validated.
func Load(variant, customPath string) (FroggerConfig, error) {
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(variant, data)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(variant, data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(variant, data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := decode(variant, data); err == nil {
			return cfg, cfg.Validate()
		}
	}
	cfg := DefaultFor(variant) // Fallback to hardcoded if embed fails
	return cfg, cfg.Validate()
}

// Parse decodes YAML for a variant on top of its defaults and validates it.
func Parse(variant string, data []byte) (FroggerConfig, error) {
	cfg, err := decode(variant, data)
	if err != nil {
		return FroggerConfig{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, cfg.Validate()
}

func decode(variant string, data []byte) (FroggerConfig, error) {
	cfg := DefaultFor(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		if cfg.Rules.LossPolicy == LossLives {
			cfg.Rules.Lives = 5
		}
	case DifficultyHard:
		if cfg.Rules.LossPolicy == LossLives {
			cfg.Rules.Lives = 2
		}
		cfg.LilyPads.SinkChance *= 2
	}
}
