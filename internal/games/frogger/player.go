package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Player is the frog under the user's control.
type Player struct {
	X, Y     int
	Size     int
	Moving   bool
	HopFrame int

	// Current move
	FromX, FromY int
	ToX, ToY     int

	Furthest int // Smallest Y reached since the last reset

	style     string
	step      int
	hopTicks  int
	hopHeight int
}

// NewPlayer creates a player at its configured start position.
func NewPlayer(cfg config.PlayerConfig, step int) *Player {
	p := &Player{
		Size:      cfg.Size,
		style:     cfg.HopStyle,
		step:      step,
		hopTicks:  max(cfg.HopTicks, 1),
		hopHeight: cfg.HopHeight,
	}
	p.Reset(cfg.StartX, cfg.StartY)
	return p
}

// Rect returns the player's bounding box (without the visual hop lift).
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Reset places the player at (x, y) and cancels any move in progress.
func (p *Player) Reset(x, y int) {
	p.X, p.Y = x, y
	p.Furthest = y
	p.FromX, p.FromY = x, y
	p.ToX, p.ToY = x, y
	p.Moving = false
	p.HopFrame = 0
}

// OnDirection starts a one-step move in dir, clamped to bounds.
// It is ignored while a move is in progress and reports whether a move started.
func (p *Player) OnDirection(dir core.Action, bounds core.Rect) bool {
	if p.Moving || !dir.IsDirection() {
		return false
	}

	tx, ty := p.X, p.Y
	switch dir {
	case core.ActionUp:
		ty -= p.step
	case core.ActionDown:
		ty += p.step
	case core.ActionLeft:
		tx -= p.step
	case core.ActionRight:
		tx += p.step
	}
	tx = core.Clamp(tx, bounds.X, bounds.Right()-p.Size)
	ty = core.Clamp(ty, bounds.Y, bounds.Bottom()-p.Size)

	p.FromX, p.FromY = p.X, p.Y
	p.ToX, p.ToY = tx, ty
	p.HopFrame = 0

	switch p.style {
	case config.HopSlide:
		p.Moving = true
	case config.HopArc:
		p.X, p.Y = tx, ty
		p.Moving = true
	default:
		p.X, p.Y = tx, ty
		p.Moving = false
	}
	return true
}

// Advance plays one tick of the current move.
func (p *Player) Advance() {
	if !p.Moving {
		return
	}

	p.HopFrame++
	switch p.style {
	case config.HopSlide:
		delta := (p.step + p.hopTicks - 1) / p.hopTicks
		p.X = approach(p.X, p.ToX, delta)
		p.Y = approach(p.Y, p.ToY, delta)
		if p.X == p.ToX && p.Y == p.ToY {
			p.finish()
		}
	default:
		if p.HopFrame >= p.hopTicks {
			p.finish()
		}
	}
}

// Sliding reports whether the player is between cells in a slide.
func (p *Player) Sliding() bool {
	return p.Moving && p.style == config.HopSlide
}

func (p *Player) finish() {
	p.Moving = false
	p.HopFrame = 0
}

// HopOffset returns the visual lift of an arced hop in pixels.
func (p *Player) HopOffset() int {
	if !p.Moving || p.style != config.HopArc {
		return 0
	}
	t := math.Pi * float64(p.HopFrame) / float64(p.hopTicks)
	return int(math.Sin(t) * float64(p.hopHeight))
}

// approach moves v toward target by at most delta.
func approach(v, target, delta int) int {
	if v < target {
		return min(v+delta, target)
	}
	if v > target {
		return max(v-delta, target)
	}
	return v
}
