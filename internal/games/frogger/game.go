package frogger

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives warnings about degraded resources
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used to report configuration and sprite fallbacks.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	variant string
	runtime core.RuntimeConfig
	cfg     config.FroggerConfig
	world   *World
	glyph   rune

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates the full edition: arced hops, lives, collect every frog.
func New() *Game {
	return &Game{variant: config.VariantFrogger}
}

// NewClassic creates the classic edition: instant steps, one life, reach the far bank.
func NewClassic() *Game {
	return &Game{variant: config.VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Frogger (Classic)"
	}
	return "Frogger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		logger.Warn("invalid config, using defaults", "game", g.variant, "err", err)
		cfg = config.DefaultFor(g.variant)
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.glyph = glyphFromString(cfg.Player.Glyph)
	if cfg.Player.SpritePath != "" {
		if r, err := LoadGlyph(cfg.Player.SpritePath); err != nil {
			logger.Warn("sprite unavailable, using glyph", "path", cfg.Player.SpritePath, "err", err)
		} else {
			g.glyph = r
		}
	}

	g.world = NewWorld(cfg, core.NewRand(runtime.Seed))
	g.world.TickMillis = runtime.TickMillis()

	g.minScreenW = 30
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	sounds := g.world.Tick(in.Actions())
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// Resize adapts to a new terminal size without restarting the round.
// The board is logical, so only the size check depends on the terminal.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.State
	return core.GameState{
		Score:     s.Score,
		Lives:     s.Lives,
		Collected: s.FrogsCollected,
		GameOver:  s.Terminal(),
		Won:       s.Status == StatusWon,
		Paused:    s.Paused,
		Message:   s.Message,
	}
}

// Snapshot returns the current world state.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Config returns the configuration loaded at the last Reset.
func (g *Game) Config() config.FroggerConfig {
	return g.cfg
}

// Glyph returns the rune drawn for the player.
func (g *Game) Glyph() rune {
	return g.glyph
}

func init() {
	registry.Register(config.VariantFrogger, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantClassic, func() registry.Game {
		return NewClassic()
	})
}
