package config

import (
	"errors"
	"fmt"
)

// Validate reports every inconsistency in the configuration at once.
func (c FroggerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Board.Width > 0 && c.Board.Height > 0, "board must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	check(c.Board.Step > 0, "board.step must be positive, got %d", c.Board.Step)

	check(c.Player.Size > 0, "player.size must be positive, got %d", c.Player.Size)
	check(c.Player.Size <= c.Board.Width && c.Player.Size <= c.Board.Height, "player.size %d exceeds the board", c.Player.Size)
	check(c.Player.StartX >= 0 && c.Player.StartX+c.Player.Size <= c.Board.Width, "player.start_x %d is off the board", c.Player.StartX)
	check(c.Player.StartY >= 0 && c.Player.StartY+c.Player.Size <= c.Board.Height, "player.start_y %d is off the board", c.Player.StartY)
	switch c.Player.HopStyle {
	case HopInstant, HopArc, HopSlide:
	default:
		check(false, "player.hop_style %q is not one of instant, arc, slide", c.Player.HopStyle)
	}
	check(c.Player.HopTicks > 0, "player.hop_ticks must be positive, got %d", c.Player.HopTicks)
	check(c.Player.HopHeight >= 0, "player.hop_height must not be negative, got %d", c.Player.HopHeight)

	b := c.Bands
	check(b.LandHeight >= 0 && b.WaterHeight >= 0 && b.RoadHeight >= 0, "bands must not be negative")
	check(b.LandHeight+b.WaterHeight+b.RoadHeight <= c.Board.Height, "bands exceed board height %d", c.Board.Height)
	check(b.LaneHeight > 0, "bands.lane_height must be positive, got %d", b.LaneHeight)
	check(b.LaneGap >= 0, "bands.lane_gap must not be negative, got %d", b.LaneGap)

	check(c.Cars.Lanes >= 0 && c.Cars.PerLane >= 0, "cars.lanes and cars.per_lane must not be negative")
	check(c.Cars.Width > 0, "cars.width must be positive, got %d", c.Cars.Width)
	check(c.Cars.MinSpeed > 0 && c.Cars.MaxSpeed >= c.Cars.MinSpeed, "cars speed range [%d, %d] is invalid", c.Cars.MinSpeed, c.Cars.MaxSpeed)
	if c.Cars.Lanes > 0 {
		check(c.RoadTop()+(c.Cars.Lanes-1)*c.LanePitch()+b.LaneHeight <= c.RoadTop()+b.RoadHeight,
			"%d car lanes do not fit in the road band", c.Cars.Lanes)
	}

	p := c.LilyPads
	check(p.Lanes >= 0 && p.PerLane >= 0, "lilypads.lanes and lilypads.per_lane must not be negative")
	check(p.Width > 0, "lilypads.width must be positive, got %d", p.Width)
	check(p.MinSpeed > 0 && p.MaxSpeed >= p.MinSpeed, "lilypads speed range [%d, %d] is invalid", p.MinSpeed, p.MaxSpeed)
	if p.Lanes > 0 {
		check(c.WaterTop()+(p.Lanes-1)*c.LanePitch()+b.LaneHeight <= c.WaterTop()+b.WaterHeight,
			"%d lily pad lanes do not fit in the water band", p.Lanes)
	}
	switch p.SinkMode {
	case SinkRandom, SinkInterval, SinkNever:
	default:
		check(false, "lilypads.sink_mode %q is not one of random, interval, never", p.SinkMode)
	}
	check(p.SinkChance >= 0 && p.SinkChance <= 1, "lilypads.sink_chance must be in [0, 1], got %v", p.SinkChance)
	check(p.SinkDurationMs >= 0 && p.SinkIntervalMs >= 0, "lilypads sink timings must not be negative")

	check(c.Collectibles.Count >= 0, "collectibles.count must not be negative, got %d", c.Collectibles.Count)
	check(c.Collectibles.Size > 0, "collectibles.size must be positive, got %d", c.Collectibles.Size)

	switch c.Rules.LossPolicy {
	case LossLives:
		check(c.Rules.Lives > 0, "rules.lives must be positive, got %d", c.Rules.Lives)
	case LossInstant:
	default:
		check(false, "rules.loss_policy %q is not one of lives, instant", c.Rules.LossPolicy)
	}
	switch c.Rules.Goal {
	case GoalCollectAll:
		check(c.Collectibles.Count > 0, "goal collect_all needs at least one collectible")
	case GoalReachTop:
	default:
		check(false, "rules.goal %q is not one of collect_all, reach_top", c.Rules.Goal)
	}

	check(c.Horn.CooldownMs >= 0 && c.Horn.JitterMs >= 0, "horn timings must not be negative")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)
	switch c.Difficulty.Progression.Type {
	case "collected", "time", "none", "":
	default:
		check(false, "difficulty.progression.type %q is not one of collected, time, none", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
