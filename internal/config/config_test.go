package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, variant := range []string{VariantFrogger, VariantClassic} {
		t.Run(variant, func(t *testing.T) {
			cfg, err := Parse(variant, GetDefaultYAML(variant))
			if err != nil {
				t.Fatalf("embedded defaults invalid: %v", err)
			}
			if cfg != DefaultFor(variant) {
				t.Errorf("embedded YAML differs from hardcoded defaults:\n%+v\n%+v", cfg, DefaultFor(variant))
			}
		})
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Errorf("frogger defaults: %v", err)
	}
	if err := DefaultClassicConfig().Validate(); err != nil {
		t.Errorf("classic defaults: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "rules:\n  lives: 7\ncars:\n  lanes: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantFrogger, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules.Lives != 7 || cfg.Cars.Lanes != 2 {
		t.Errorf("overrides not applied: lives=%d lanes=%d", cfg.Rules.Lives, cfg.Cars.Lanes)
	}
	if cfg.Board.Width != 600 || cfg.Player.HopStyle != HopArc {
		t.Errorf("untouched keys should keep defaults, got width=%d hop=%q", cfg.Board.Width, cfg.Player.HopStyle)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(VariantFrogger, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantFrogger, path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := DefaultFroggerConfig()
	cfg.Player.HopStyle = "teleport"
	cfg.Rules.LossPolicy = "maybe"
	cfg.Cars.MinSpeed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"hop_style", "loss_policy", "cars speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidateLaneFit(t *testing.T) {
	cfg := DefaultFroggerConfig()
	cfg.LilyPads.Lanes = 3
	if err := cfg.Validate(); err == nil {
		t.Error("three pad lanes should not fit the default water band")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		lives     int
		sinkScale float64
	}{
		{DifficultyEasy, true, 0.0, 5, 1},
		{DifficultyNormal, true, 0.3, 3, 1},
		{DifficultyHard, true, 0.7, 2, 2},
		{DifficultyFixed, false, 0.0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if tt.enabled && cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Rules.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Rules.Lives, tt.lives)
			}
			if want := 0.002 * tt.sinkScale; cfg.LilyPads.SinkChance != want {
				t.Errorf("SinkChance = %v, expected %v", cfg.LilyPads.SinkChance, want)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "collected", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		collected int
		want      float64
	}{
		{0, 0.2},
		{2, 0.6},
		{4, 1.0},
		{10, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.collected, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.collected, got, tt.want)
		}
	}

	if got := dm.SpeedFactor(4, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("SpeedFactor at max = %v, expected 2", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(3, 1000); got != 0.5 {
		t.Errorf("disabled Level = %v, expected initial level 0.5", got)
	}
}

func TestScaleSpeed(t *testing.T) {
	tests := []struct {
		base   int
		factor float64
		want   int
	}{
		{3, 1.0, 3},
		{3, 1.5, 5},
		{-2, 1.5, -3},
		{1, 0.1, 1},
		{-1, 0.1, -1},
		{0, 2.0, 0},
	}
	for _, tt := range tests {
		if got := ScaleSpeed(tt.base, tt.factor); got != tt.want {
			t.Errorf("ScaleSpeed(%d, %v) = %d, expected %d", tt.base, tt.factor, got, tt.want)
		}
	}
}
