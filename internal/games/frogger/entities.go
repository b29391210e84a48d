package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Car is a road obstacle. Its Y never changes; X wraps at the board edges.
type Car struct {
	X, Y      int
	W, H      int
	Speed     int // Signed horizontal speed in pixels per tick
	BaseSpeed int // Speed before difficulty scaling
}

// Rect returns the car's bounding box.
func (c *Car) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Advance moves the car one tick and wraps it once it is fully off the board.
func (c *Car) Advance(boundsWidth int) {
	c.X = wrapX(c.X+c.Speed, c.W, c.Speed, boundsWidth)
}

// LilyPad is a river platform. While sinking it is hidden below the board
// and cannot carry the player.
type LilyPad struct {
	X, Y      int
	W, H      int
	Speed     int
	BaseSpeed int
	LaneY     int   // Y the pad resurfaces at
	Sinking   bool  // Under water, not collidable
	SinkStart int64 // Simulated ms when the current sink began
	NextSink  int64 // Simulated ms of the next scheduled sink (interval mode)
}

// Rect returns the pad's bounding box.
func (p *LilyPad) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Collidable reports whether the pad can currently support the player.
func (p *LilyPad) Collidable() bool {
	return !p.Sinking
}

// Move advances the pad horizontally and wraps it at the board edges.
func (p *LilyPad) Move(boundsWidth int) {
	p.X = wrapX(p.X+p.Speed, p.W, p.Speed, boundsWidth)
}

// Sink hides the pad at hiddenY starting at now.
func (p *LilyPad) Sink(now int64, hiddenY int) {
	p.Sinking = true
	p.SinkStart = now
	p.Y = hiddenY
}

// Resurface puts the pad back on its lane.
func (p *LilyPad) Resurface() {
	p.Sinking = false
	p.Y = p.LaneY
}

// CollectibleFrog is a bonus frog waiting on the far bank.
type CollectibleFrog struct {
	X, Y      int
	W, H      int
	Color     core.Color
	Collected bool
}

// Rect returns the frog's bounding box.
func (f *CollectibleFrog) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.W, f.H)
}

// Collect marks the frog as taken. It reports false if it already was.
func (f *CollectibleFrog) Collect() bool {
	if f.Collected {
		return false
	}
	f.Collected = true
	return true
}

// wrapX returns the new x of an object of the given width moving at speed.
// Right-moving objects reappear at -width once past the right edge,
// left-moving ones at boundsWidth once past the left edge.
func wrapX(x, width, speed, boundsWidth int) int {
	if speed > 0 && x > boundsWidth {
		return -width
	}
	if speed < 0 && x+width < 0 {
		return boundsWidth
	}
	return x
}
