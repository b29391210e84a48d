package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Outcome is what the rule engine decided for a tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSquashed
	OutcomeDrowned
	OutcomeCollected
	OutcomeGoal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSquashed:
		return "squashed"
	case OutcomeDrowned:
		return "drowned"
	case OutcomeCollected:
		return "collected"
	case OutcomeGoal:
		return "goal"
	default:
		return "none"
	}
}

// Rules is the collision and rule engine.
type Rules struct {
	lossPolicy string
	goal       string
	drowning   bool

	landHeight  int
	waterTop    int
	waterBottom int

	horn config.HornConfig
}

// NewRules builds the rule engine for a configuration.
func NewRules(cfg config.FroggerConfig) Rules {
	return Rules{
		lossPolicy:  cfg.Rules.LossPolicy,
		goal:        cfg.Rules.Goal,
		drowning:    cfg.Rules.Drowning,
		landHeight:  cfg.Bands.LandHeight,
		waterTop:    cfg.WaterTop(),
		waterBottom: cfg.WaterTop() + cfg.Bands.WaterHeight,
		horn:        cfg.Horn,
	}
}

// Evaluate runs the per-tick checks in fixed order: car, water,
// collectible, goal. The first decisive check ends evaluation. When the
// player survives in place, nearby cars may honk. Sounds raised are
// appended to the world's event list.
func (r Rules) Evaluate(w *World) Outcome {
	player := w.Player.Rect()

	if w.Lanes.CarHit(player) != nil {
		w.emit(core.SoundSquash)
		r.applyLoss(w)
		return OutcomeSquashed
	}

	// A slide is judged where it lands
	if r.drowning && !w.Player.Sliding() && r.inWater(w.Player.Y) && !w.Lanes.Supported(player) {
		w.emit(core.SoundDrown)
		r.applyLoss(w)
		return OutcomeDrowned
	}

	for i := range w.Frogs {
		frog := &w.Frogs[i]
		if frog.Collected || !frog.Rect().Intersects(player) {
			continue
		}
		frog.Collect()
		w.State.FrogsCollected++
		w.State.Score += PointsPerFrog
		w.emit(core.SoundCollect)
		w.resetPlayer()
		if r.goal == config.GoalCollectAll && w.State.FrogsCollected >= len(w.Frogs) {
			w.State.Win()
			w.emit(core.SoundWin)
		}
		return OutcomeCollected
	}

	if r.goal == config.GoalReachTop && player.Bottom() <= r.landHeight {
		w.State.Win()
		w.emit(core.SoundWin)
		return OutcomeGoal
	}

	r.honk(w)
	return OutcomeNone
}

func (r Rules) inWater(y int) bool {
	return y >= r.waterTop && y < r.waterBottom
}

// applyLoss applies the loss policy after a fatal event.
// The player goes back to start either way.
func (r Rules) applyLoss(w *World) {
	over := true
	if r.lossPolicy == config.LossLives {
		over = w.State.LoseLife()
	} else {
		w.State.Lives = 0
		w.State.Lose()
	}
	if over {
		w.emit(core.SoundGameOver)
	}
	w.resetPlayer()
}

// honk sounds the horn when a car is close to the player and the horn
// cooldown has elapsed. The next cooldown is randomized.
func (r Rules) honk(w *World) {
	if !r.horn.Enabled || w.Now < w.nextHorn {
		return
	}
	for i := range w.Lanes.Cars {
		car := &w.Lanes.Cars[i]
		if core.Abs(car.X-w.Player.X) < r.horn.RangeX && core.Abs(car.Y-w.Player.Y) < r.horn.RangeY {
			w.emit(core.SoundHorn)
			cooldown := int64(r.horn.CooldownMs)
			if r.horn.JitterMs > 0 {
				cooldown += int64(w.rng.Intn(r.horn.JitterMs))
			}
			w.nextHorn = w.Now + cooldown
			return
		}
	}
}
