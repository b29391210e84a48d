package config

import "math"

// DifficultyManager calculates dynamic obstacle speeds based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0) based on frogs
// collected or ticks survived.
func (d *DifficultyManager) Level(collected int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "collected":
		progress = float64(collected) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to base obstacle speeds.
// It grows from 1 to 1+speed_multiplier as the level goes from 0 to 1.
func (d *DifficultyManager) SpeedFactor(collected int, ticks int) float64 {
	return 1.0 + d.Level(collected, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// ScaleSpeed applies a speed factor to a signed integer speed, rounding to
// the nearest integer and never letting a moving obstacle stop.
func ScaleSpeed(base int, factor float64) int {
	if base == 0 {
		return 0
	}
	scaled := int(math.Round(float64(base) * factor))
	if scaled == 0 {
		if base > 0 {
			return 1
		}
		return -1
	}
	return scaled
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
