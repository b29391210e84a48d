// Package config provides YAML-based game configuration loading and
// difficulty management for the Frogger variants.
package config

// Variant identifiers. Each variant is registered as its own game.
const (
	VariantFrogger = "frogger"
	VariantClassic = "frogger_classic"
)

// Hop styles for the player controller.
const (
	HopInstant = "instant" // position jumps, move completes the same tick
	HopArc     = "arc"     // position jumps, a sine lift plays over HopTicks
	HopSlide   = "slide"   // position glides to the target over HopTicks
)

// Loss policies applied on a fatal collision or drowning.
const (
	LossLives   = "lives"
	LossInstant = "instant"
)

// Win conditions.
const (
	GoalCollectAll = "collect_all"
	GoalReachTop   = "reach_top"
)

// Lily pad sinking modes.
const (
	SinkRandom   = "random"
	SinkInterval = "interval"
	SinkNever    = "never"
)

// FroggerConfig contains all configuration for one Frogger variant.
type FroggerConfig struct {
	Board        BoardConfig        `yaml:"board"`
	Player       PlayerConfig       `yaml:"player"`
	Bands        BandsConfig        `yaml:"bands"`
	Cars         CarsConfig         `yaml:"cars"`
	LilyPads     LilyPadsConfig     `yaml:"lilypads"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Rules        RulesConfig        `yaml:"rules"`
	Horn         HornConfig         `yaml:"horn"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
	Audio        AudioConfig        `yaml:"audio"`
}

// BoardConfig defines the logical playfield in pixels.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"` // Grid distance covered by one hop
}

// PlayerConfig defines the player frog.
type PlayerConfig struct {
	Size       int    `yaml:"size"`
	StartX     int    `yaml:"start_x"`
	StartY     int    `yaml:"start_y"`
	HopStyle   string `yaml:"hop_style"`
	HopTicks   int    `yaml:"hop_ticks"`
	HopHeight  int    `yaml:"hop_height"`
	Glyph      string `yaml:"glyph"`
	SpritePath string `yaml:"sprite_path"` // Optional text file whose first rune replaces Glyph
}

// BandsConfig defines the horizontal bands of the board, top to bottom.
type BandsConfig struct {
	LandHeight  int `yaml:"land_height"`
	WaterHeight int `yaml:"water_height"`
	RoadHeight  int `yaml:"road_height"`
	LaneHeight  int `yaml:"lane_height"`
	LaneGap     int `yaml:"lane_gap"`
}

// CarsConfig defines the road traffic.
type CarsConfig struct {
	Lanes    int `yaml:"lanes"`
	PerLane  int `yaml:"per_lane"`
	Width    int `yaml:"width"`
	Spacing  int `yaml:"spacing"`
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
}

// LilyPadsConfig defines the river platforms and their sinking behavior.
type LilyPadsConfig struct {
	Lanes          int     `yaml:"lanes"`
	PerLane        int     `yaml:"per_lane"`
	Width          int     `yaml:"width"`
	Spacing        int     `yaml:"spacing"`
	MinSpeed       int     `yaml:"min_speed"`
	MaxSpeed       int     `yaml:"max_speed"`
	SinkMode       string  `yaml:"sink_mode"`
	SinkChance     float64 `yaml:"sink_chance"`      // Per-tick probability in random mode
	SinkIntervalMs int     `yaml:"sink_interval_ms"` // Time afloat between sinks in interval mode
	SinkDurationMs int     `yaml:"sink_duration_ms"` // Time spent under water
}

// CollectiblesConfig defines the bonus frogs on the far bank.
type CollectiblesConfig struct {
	Count int `yaml:"count"`
	Size  int `yaml:"size"`
}

// RulesConfig defines win and loss conditions.
type RulesConfig struct {
	LossPolicy string `yaml:"loss_policy"`
	Lives      int    `yaml:"lives"`
	Goal       string `yaml:"goal"`
	Drowning   bool   `yaml:"drowning"`
}

// HornConfig defines when nearby cars honk at the player.
type HornConfig struct {
	Enabled    bool `yaml:"enabled"`
	RangeX     int  `yaml:"range_x"`
	RangeY     int  `yaml:"range_y"`
	CooldownMs int  `yaml:"cooldown_ms"`
	JitterMs   int  `yaml:"jitter_ms"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "collected", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Frogs collected / ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to obstacle speed factor at max difficulty
}

// WaterTop returns the y coordinate where the river starts.
func (c FroggerConfig) WaterTop() int {
	return c.Bands.LandHeight
}

// RoadTop returns the y coordinate where the road starts.
func (c FroggerConfig) RoadTop() int {
	return c.Bands.LandHeight + c.Bands.WaterHeight
}

// LanePitch returns the vertical distance between two lane tops.
func (c FroggerConfig) LanePitch() int {
	return c.Bands.LaneHeight + c.Bands.LaneGap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
