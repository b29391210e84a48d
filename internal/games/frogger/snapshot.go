package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// PadView is a lily pad as seen by a renderer.
type PadView struct {
	Rect    core.Rect
	Sinking bool
}

// FrogView is a bonus frog as seen by a renderer.
type FrogView struct {
	Rect  core.Rect
	Color core.Color
}

// Snapshot is a read-only copy of everything a frame needs to draw,
// plus the counters used by tests to compare runs.
type Snapshot struct {
	Tick int
	Now  int64

	Board      core.Rect
	LandHeight int
	WaterTop   int
	RoadTop    int
	RoadBottom int
	CarLaneYs  []int // Top of every road lane

	Cars      []core.Rect
	Pads      []PadView
	Frogs     []FrogView // Uncollected only
	Player    core.Rect
	HopOffset int
	Moving    bool

	Status         Status
	Lives          int
	FrogsCollected int
	FrogsTotal     int
	Score          int
	Message        string
	Paused         bool
	SpeedFactor    float64
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	cfg := w.cfg

	laneYs := make([]int, cfg.Cars.Lanes)
	for i := range laneYs {
		laneYs[i] = cfg.RoadTop() + i*cfg.LanePitch()
	}

	cars := make([]core.Rect, len(w.Lanes.Cars))
	for i := range w.Lanes.Cars {
		cars[i] = w.Lanes.Cars[i].Rect()
	}

	pads := make([]PadView, len(w.Lanes.Pads))
	for i := range w.Lanes.Pads {
		pads[i] = PadView{Rect: w.Lanes.Pads[i].Rect(), Sinking: w.Lanes.Pads[i].Sinking}
	}

	frogs := make([]FrogView, 0, len(w.Frogs))
	for i := range w.Frogs {
		if w.Frogs[i].Collected {
			continue
		}
		frogs = append(frogs, FrogView{Rect: w.Frogs[i].Rect(), Color: w.Frogs[i].Color})
	}

	return Snapshot{
		Tick:       w.Ticks,
		Now:        w.Now,
		Board:      w.Bounds(),
		LandHeight: cfg.Bands.LandHeight,
		WaterTop:   cfg.WaterTop(),
		RoadTop:    cfg.RoadTop(),
		RoadBottom: cfg.RoadTop() + cfg.Bands.RoadHeight,
		CarLaneYs:  laneYs,

		Cars:      cars,
		Pads:      pads,
		Frogs:     frogs,
		Player:    w.Player.Rect(),
		HopOffset: w.Player.HopOffset(),
		Moving:    w.Player.Moving,

		Status:         w.State.Status,
		Lives:          w.State.Lives,
		FrogsCollected: w.State.FrogsCollected,
		FrogsTotal:     len(w.Frogs),
		Score:          w.State.Score,
		Message:        w.State.Message,
		Paused:         w.State.Paused,
		SpeedFactor:    w.speedFactor,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Now) //#nosec G115 -- hash computation
	mix := func(r core.Rect) {
		h = h*31 + uint64(r.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(r.Y) //#nosec G115 -- hash computation
	}

	for _, c := range snap.Cars {
		mix(c)
	}
	for _, p := range snap.Pads {
		mix(p.Rect)
	}
	for _, f := range snap.Frogs {
		mix(f.Rect)
		h = h*31 + uint64(f.Color) //#nosec G115 -- hash computation
	}
	mix(snap.Player)

	h = h*31 + uint64(snap.Status)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FrogsCollected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	return h
}
