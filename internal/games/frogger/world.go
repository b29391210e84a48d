// Package frogger implements the Frogger simulation and its game adapter.
// The World is a pure, deterministic simulation context: it reads no clock,
// keeps no globals and draws randomness from an injected source.
package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// DefaultTickMillis is the simulated duration of one tick.
const DefaultTickMillis = 30

// World owns every entity of a round plus the simulated clock.
type World struct {
	Lanes  *Lanes
	Player *Player
	Frogs  []CollectibleFrog
	State  GameState

	Now        int64 // Simulated milliseconds since the round started
	Ticks      int
	TickMillis int64

	cfg         config.FroggerConfig
	rng         core.Rand
	rules       Rules
	difficulty  *config.DifficultyManager
	speedFactor float64
	nextHorn    int64
	sounds      []core.Sound
}

// NewWorld creates a world for cfg drawing randomness from rng.
func NewWorld(cfg config.FroggerConfig, rng core.Rand) *World {
	w := &World{
		cfg:        cfg,
		rng:        rng,
		rules:      NewRules(cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		TickMillis: DefaultTickMillis,
	}
	w.Restart()
	return w
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.FroggerConfig {
	return w.cfg
}

// Bounds returns the board rectangle.
func (w *World) Bounds() core.Rect {
	return core.NewRect(0, 0, w.cfg.Board.Width, w.cfg.Board.Height)
}

// Restart reinitializes every entity, counter and flag.
func (w *World) Restart() {
	w.Now = 0
	w.Ticks = 0
	w.nextHorn = 0
	w.sounds = nil

	w.Lanes = NewLanes(w.cfg, w.rng, w.Now)
	w.Player = NewPlayer(w.cfg.Player, w.cfg.Board.Step)
	w.Frogs = newCollectibles(w.cfg, w.rng)
	w.State = NewGameState(w.cfg.Rules.Lives)

	w.speedFactor = 1.0
	w.applyDifficulty()
}

// newCollectibles spreads the bonus frogs evenly along the far bank.
func newCollectibles(cfg config.FroggerConfig, rng core.Rand) []CollectibleFrog {
	n := cfg.Collectibles.Count
	size := cfg.Collectibles.Size
	frogs := make([]CollectibleFrog, n)
	for i := range frogs {
		frogs[i] = CollectibleFrog{
			X:     (i + 1) * cfg.Board.Width / (n + 1),
			Y:     cfg.Bands.LandHeight - size,
			W:     size,
			H:     size,
			Color: core.RandomColor(rng),
		}
	}
	return frogs
}

// Tick applies the queued commands then advances the simulation one step:
// obstacles, player, rules. It returns the sounds raised during the tick.
// A finished round ignores everything but Restart.
func (w *World) Tick(cmds []core.Action) []core.Sound {
	w.sounds = w.sounds[:0]

	for _, cmd := range cmds {
		w.apply(cmd)
	}

	if w.State.Terminal() || w.State.Paused {
		return w.drain()
	}

	w.Now += w.TickMillis
	w.Ticks++
	w.applyDifficulty()

	w.Lanes.Advance(w.cfg.Board.Width, w.Now, w.rng)
	w.Player.Advance()
	w.rules.Evaluate(w)

	return w.drain()
}

func (w *World) apply(cmd core.Action) {
	switch {
	case cmd == core.ActionRestart:
		if w.State.Terminal() {
			w.Restart()
		}
	case cmd == core.ActionPause:
		w.State.TogglePause()
	case cmd.IsDirection():
		if w.State.Terminal() || w.State.Paused {
			return
		}
		if w.Player.OnDirection(cmd, w.Bounds()) {
			w.emit(core.SoundHop)
			w.scoreProgress()
		}
	}
}

// scoreProgress awards points for each row gained beyond the furthest
// row reached since the player last left the start.
func (w *World) scoreProgress() {
	if w.Player.ToY >= w.Player.Furthest {
		return
	}
	step := max(w.cfg.Board.Step, 1)
	rows := (w.Player.Furthest - w.Player.ToY + step - 1) / step
	w.State.Score += rows * PointsPerRow
	w.Player.Furthest = w.Player.ToY
}

// resetPlayer sends the frog back to the start row.
func (w *World) resetPlayer() {
	w.Player.Reset(w.cfg.Player.StartX, w.cfg.Player.StartY)
}

// applyDifficulty rescales obstacle speeds when the difficulty level moved.
func (w *World) applyDifficulty() {
	factor := w.difficulty.SpeedFactor(w.State.FrogsCollected, w.Ticks)
	if factor == w.speedFactor {
		return
	}
	w.speedFactor = factor
	w.Lanes.Rescale(factor)
}

// SpeedFactor returns the multiplier currently applied to obstacle speeds.
func (w *World) SpeedFactor() float64 {
	return w.speedFactor
}

func (w *World) emit(s core.Sound) {
	w.sounds = append(w.sounds, s)
}

func (w *World) drain() []core.Sound {
	if len(w.sounds) == 0 {
		return nil
	}
	out := make([]core.Sound, len(w.sounds))
	copy(out, w.sounds)
	return out
}
