package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Lanes owns every moving obstacle: cars on the road and pads on the river.
type Lanes struct {
	Cars []Car
	Pads []LilyPad

	sinkMode     string
	sinkChance   float64
	sinkInterval int64
	sinkDuration int64
	hiddenY      int // Where sinking pads are parked, below the board
}

// NewLanes lays out cars and pads from the configuration.
// Even lanes travel left to right, odd lanes right to left; within a lane
// obstacles start Spacing apart, off the edge they enter from.
func NewLanes(cfg config.FroggerConfig, rng core.Rand, now int64) *Lanes {
	l := &Lanes{
		Cars:         make([]Car, 0, cfg.Cars.Lanes*cfg.Cars.PerLane),
		Pads:         make([]LilyPad, 0, cfg.LilyPads.Lanes*cfg.LilyPads.PerLane),
		sinkMode:     cfg.LilyPads.SinkMode,
		sinkChance:   cfg.LilyPads.SinkChance,
		sinkInterval: int64(cfg.LilyPads.SinkIntervalMs),
		sinkDuration: int64(cfg.LilyPads.SinkDurationMs),
		hiddenY:      cfg.Board.Height,
	}

	width := cfg.Board.Width
	pitch := cfg.LanePitch()

	for i := 0; i < cfg.Cars.Lanes; i++ {
		y := cfg.RoadTop() + pitch*i
		dir := laneDirection(i)
		for j := 0; j < cfg.Cars.PerLane; j++ {
			speed := randSpeed(rng, cfg.Cars.MinSpeed, cfg.Cars.MaxSpeed) * dir
			l.Cars = append(l.Cars, Car{
				X:         startX(dir, j, cfg.Cars.Spacing, width),
				Y:         y,
				W:         cfg.Cars.Width,
				H:         cfg.Bands.LaneHeight,
				Speed:     speed,
				BaseSpeed: speed,
			})
		}
	}

	for i := 0; i < cfg.LilyPads.Lanes; i++ {
		y := cfg.WaterTop() + pitch*i
		dir := laneDirection(i)
		for j := 0; j < cfg.LilyPads.PerLane; j++ {
			speed := randSpeed(rng, cfg.LilyPads.MinSpeed, cfg.LilyPads.MaxSpeed) * dir
			pad := LilyPad{
				X:         startX(dir, j, cfg.LilyPads.Spacing, width),
				Y:         y,
				W:         cfg.LilyPads.Width,
				H:         cfg.Bands.LaneHeight,
				Speed:     speed,
				BaseSpeed: speed,
				LaneY:     y,
			}
			if l.sinkMode == config.SinkInterval {
				// Stagger the first sink so pads do not vanish together
				pad.NextSink = now + l.sinkInterval + int64(rng.Intn(int(l.sinkInterval)+1))
			}
			l.Pads = append(l.Pads, pad)
		}
	}

	return l
}

func laneDirection(lane int) int {
	if lane%2 == 0 {
		return 1
	}
	return -1
}

func startX(dir, index, spacing, width int) int {
	if dir > 0 {
		return -index * spacing
	}
	return width + index*spacing
}

func randSpeed(rng core.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Advance moves every obstacle one tick and updates pad sinking.
// now is the simulated time in milliseconds.
func (l *Lanes) Advance(boundsWidth int, now int64, rng core.Rand) {
	for i := range l.Cars {
		l.Cars[i].Advance(boundsWidth)
	}

	for i := range l.Pads {
		pad := &l.Pads[i]
		pad.Move(boundsWidth)

		if pad.Sinking {
			if now-pad.SinkStart > l.sinkDuration {
				pad.Resurface()
			}
			continue
		}

		switch l.sinkMode {
		case config.SinkRandom:
			if rng.Float64() < l.sinkChance {
				pad.Sink(now, l.hiddenY)
			}
		case config.SinkInterval:
			if now >= pad.NextSink {
				pad.Sink(now, l.hiddenY)
				pad.NextSink = now + l.sinkDuration + l.sinkInterval
			}
		}
	}
}

// Rescale recomputes effective speeds from base speeds.
func (l *Lanes) Rescale(factor float64) {
	for i := range l.Cars {
		l.Cars[i].Speed = config.ScaleSpeed(l.Cars[i].BaseSpeed, factor)
	}
	for i := range l.Pads {
		l.Pads[i].Speed = config.ScaleSpeed(l.Pads[i].BaseSpeed, factor)
	}
}

// CarHit returns the first car overlapping r, or nil.
func (l *Lanes) CarHit(r core.Rect) *Car {
	for i := range l.Cars {
		if l.Cars[i].Rect().Intersects(r) {
			return &l.Cars[i]
		}
	}
	return nil
}

// Supported reports whether r overlaps a pad that is above water.
func (l *Lanes) Supported(r core.Rect) bool {
	for i := range l.Pads {
		if l.Pads[i].Collidable() && l.Pads[i].Rect().Intersects(r) {
			return true
		}
	}
	return false
}
