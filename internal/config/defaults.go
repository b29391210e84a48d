package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

//go:embed defaults/frogger_classic.yaml
var defaultClassicYAML []byte

// DefaultFroggerConfig returns the full edition: arced hops, three lives,
// collect all five bonus frogs to win.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Board: BoardConfig{
			Width:  600,
			Height: 600,
			Step:   50,
		},
		Player: PlayerConfig{
			Size:      40,
			StartX:    250,
			StartY:    550,
			HopStyle:  HopArc,
			HopTicks:  10,
			HopHeight: 10,
			Glyph:     "@",
		},
		Bands: BandsConfig{
			LandHeight:  100,
			WaterHeight: 100,
			RoadHeight:  250,
			LaneHeight:  40,
			LaneGap:     15,
		},
		Cars: CarsConfig{
			Lanes:    4,
			PerLane:  2,
			Width:    80,
			Spacing:  200,
			MinSpeed: 2,
			MaxSpeed: 4,
		},
		LilyPads: LilyPadsConfig{
			Lanes:          2,
			PerLane:        2,
			Width:          100,
			Spacing:        200,
			MinSpeed:       2,
			MaxSpeed:       3,
			SinkMode:       SinkRandom,
			SinkChance:     0.002,
			SinkIntervalMs: 4000,
			SinkDurationMs: 2000,
		},
		Collectibles: CollectiblesConfig{
			Count: 5,
			Size:  40,
		},
		Rules: RulesConfig{
			LossPolicy: LossLives,
			Lives:      3,
			Goal:       GoalCollectAll,
			Drowning:   true,
		},
		Horn: HornConfig{
			Enabled:    true,
			RangeX:     100,
			RangeY:     40,
			CooldownMs: 5000,
			JitterMs:   5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "collected",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultClassicConfig returns the classic edition: instant steps, no
// lives, reach the far bank to win, pads sink on a fixed interval.
func DefaultClassicConfig() FroggerConfig {
	cfg := DefaultFroggerConfig()
	cfg.Player.HopStyle = HopInstant
	cfg.Player.HopTicks = 1
	cfg.Player.HopHeight = 0
	cfg.LilyPads.SinkMode = SinkInterval
	cfg.LilyPads.SinkChance = 0
	cfg.LilyPads.SinkIntervalMs = 5000
	cfg.Collectibles.Count = 0
	cfg.Rules = RulesConfig{
		LossPolicy: LossInstant,
		Lives:      1,
		Goal:       GoalReachTop,
		Drowning:   true,
	}
	cfg.Horn.Enabled = false
	cfg.Difficulty = DifficultyConfig{
		Progression: ProgressionConfig{Type: "none", MaxAt: 1},
	}
	return cfg
}

// DefaultFor returns the hardcoded defaults for a variant.
func DefaultFor(variant string) FroggerConfig {
	if variant == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultFroggerConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantFrogger:
		return defaultFroggerYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
