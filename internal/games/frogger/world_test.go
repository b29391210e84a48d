package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// quietConfig returns the full edition with no traffic, no river
// platforms, no horn and fixed difficulty.
func quietConfig() config.FroggerConfig {
	cfg := config.DefaultFroggerConfig()
	cfg.Cars.Lanes = 0
	cfg.LilyPads.Lanes = 0
	cfg.LilyPads.SinkMode = config.SinkNever
	cfg.Horn.Enabled = false
	cfg.Difficulty.Enabled = false
	cfg.Player.HopStyle = config.HopInstant
	return cfg
}

func countSound(sounds []core.Sound, s core.Sound) int {
	n := 0
	for _, got := range sounds {
		if got == s {
			n++
		}
	}
	return n
}

func TestUpToTopWins(t *testing.T) {
	cfg := quietConfig()
	cfg.Rules.Goal = config.GoalReachTop
	cfg.Rules.Drowning = false
	cfg.Collectibles.Count = 0
	w := NewWorld(cfg, core.NewRand(1))

	up := []core.Action{core.ActionUp}
	wantY := 550
	for i := 0; i < 10; i++ {
		w.Tick(up)
		wantY -= 50
		if w.Player.Y != wantY {
			t.Fatalf("after %d hops Y = %d, expected %d", i+1, w.Player.Y, wantY)
		}
	}

	if w.State.Status != StatusWon || w.State.Message != MessageWin {
		t.Fatalf("expected win at y=%d, got status=%v message=%q", w.Player.Y, w.State.Status, w.State.Message)
	}
	if w.State.Score != 10*PointsPerRow+PointsWinBonus {
		t.Errorf("Score = %d, expected %d", w.State.Score, 10*PointsPerRow+PointsWinBonus)
	}

	// Ticking halts once the round is over
	now, y := w.Now, w.Player.Y
	if sounds := w.Tick(up); len(sounds) != 0 {
		t.Errorf("finished round raised sounds %v", sounds)
	}
	if w.Now != now || w.Player.Y != y {
		t.Error("tick after win should be a no-op")
	}
}

func TestCarEdgeTouchIsNotCollision(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))
	w.Lanes.Cars = []Car{{X: 200, Y: 500, W: 80, H: 40}}
	w.Player.Reset(280, 500)

	w.Tick(nil)
	if w.State.Lives != 3 || w.Player.X != 280 {
		t.Fatalf("touching edges must not squash: lives=%d x=%d", w.State.Lives, w.Player.X)
	}

	w.Lanes.Cars[0].X = 201
	sounds := w.Tick(nil)
	if countSound(sounds, core.SoundSquash) != 1 {
		t.Errorf("expected squash sound, got %v", sounds)
	}
	if w.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.State.Lives)
	}
	if w.Player.X != 250 || w.Player.Y != 550 {
		t.Errorf("player should be back at start, got (%d, %d)", w.Player.X, w.Player.Y)
	}
}

func TestDrowning(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))
	w.Lanes.Pads = []LilyPad{{X: 200, Y: 155, W: 100, H: 40, LaneY: 155}}

	w.Player.Reset(250, 150)
	w.Tick(nil)
	if w.State.Lives != 3 {
		t.Fatal("frog on a floating pad should survive")
	}

	w.Lanes.Pads[0].Sinking = true
	sounds := w.Tick(nil)
	if countSound(sounds, core.SoundDrown) != 1 || w.State.Lives != 2 {
		t.Errorf("frog on a sinking pad should drown: sounds=%v lives=%d", sounds, w.State.Lives)
	}

	w.Player.Reset(450, 100)
	w.Tick(nil)
	if w.State.Lives != 1 {
		t.Errorf("open water should drown, lives=%d", w.State.Lives)
	}
}

func TestSlideLandsOnPad(t *testing.T) {
	tests := []struct {
		name      string
		pads      []LilyPad
		wantLives int
	}{
		{"pad under target", []LilyPad{{X: 0, Y: 155, W: 600, H: 40, LaneY: 155}}, 3},
		{"open water", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Player.HopStyle = config.HopSlide
			w := NewWorld(cfg, core.NewRand(1))
			w.Lanes.Pads = tt.pads
			w.Player.Reset(250, 200)

			w.Tick([]core.Action{core.ActionUp})
			if w.Player.Y != 195 || w.State.Lives != 3 {
				t.Fatalf("after one tick y=%d lives=%d, expected mid-slide at 195 with 3 lives", w.Player.Y, w.State.Lives)
			}
			for i := 0; i < 8; i++ {
				w.Tick(nil)
			}
			if w.State.Lives != 3 {
				t.Fatalf("drowned mid-slide at y=%d", w.Player.Y)
			}

			w.Tick(nil)
			if w.State.Lives != tt.wantLives {
				t.Errorf("lives after landing = %d, expected %d", w.State.Lives, tt.wantLives)
			}
			if tt.wantLives == 3 && (w.Player.Y != 150 || w.Player.Moving) {
				t.Errorf("expected to rest on the pad at 150, got y=%d moving=%v", w.Player.Y, w.Player.Moving)
			}
		})
	}
}

func TestLivesRunOut(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))

	var all []core.Sound
	for i := 0; i < 3; i++ {
		w.Player.Reset(250, 150)
		all = append(all, w.Tick(nil)...)
	}

	if w.State.Status != StatusLost || w.State.Message != MessageGameOver {
		t.Fatalf("expected game over, got status=%v message=%q", w.State.Status, w.State.Message)
	}
	if w.State.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", w.State.Lives)
	}
	if countSound(all, core.SoundGameOver) != 1 {
		t.Errorf("game over sound should play once, got %v", all)
	}
}

func TestInstantLossPolicy(t *testing.T) {
	cfg := quietConfig()
	cfg.Rules.LossPolicy = config.LossInstant
	w := NewWorld(cfg, core.NewRand(1))

	w.Player.Reset(250, 150)
	w.Tick(nil)

	if w.State.Status != StatusLost || w.State.Lives != 0 {
		t.Errorf("first fatal event should end the round, status=%v lives=%d", w.State.Status, w.State.Lives)
	}
}

func TestCollectAllWinsOnce(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))
	if len(w.Frogs) != 5 {
		t.Fatalf("expected 5 collectibles, got %d", len(w.Frogs))
	}
	for i, f := range w.Frogs {
		if f.X != (i+1)*100 || f.Y != 60 {
			t.Errorf("frog %d at (%d, %d), expected (%d, 60)", i, f.X, f.Y, (i+1)*100)
		}
	}

	var all []core.Sound

	// Standing on the same frog twice only counts once
	w.Player.Reset(100, 60)
	all = append(all, w.Tick(nil)...)
	w.Player.Reset(100, 60)
	all = append(all, w.Tick(nil)...)
	if w.State.FrogsCollected != 1 {
		t.Fatalf("FrogsCollected = %d, expected 1", w.State.FrogsCollected)
	}
	if w.Player.Y != 60 {
		t.Error("player should stay put on an already collected frog")
	}

	for _, x := range []int{200, 300, 400, 500} {
		w.Player.Reset(x, 60)
		all = append(all, w.Tick(nil)...)
		if w.Player.X != 250 || w.Player.Y != 550 {
			t.Errorf("collecting should send the player home, got (%d, %d)", w.Player.X, w.Player.Y)
		}
	}

	if w.State.Status != StatusWon || w.State.Message != MessageWin {
		t.Fatalf("expected win, got status=%v message=%q", w.State.Status, w.State.Message)
	}
	if w.State.Score != 5*PointsPerFrog+PointsWinBonus {
		t.Errorf("Score = %d, expected %d", w.State.Score, 5*PointsPerFrog+PointsWinBonus)
	}

	for i := 0; i < 10; i++ {
		all = append(all, w.Tick(nil)...)
	}
	if n := countSound(all, core.SoundWin); n != 1 {
		t.Errorf("win should happen exactly once, got %d", n)
	}
	if n := countSound(all, core.SoundCollect); n != 5 {
		t.Errorf("collect sound played %d times, expected 5", n)
	}
}

func TestHornCooldown(t *testing.T) {
	cfg := quietConfig()
	cfg.Horn.Enabled = true
	cfg.Horn.JitterMs = 0
	w := NewWorld(cfg, core.NewRand(1))
	w.Lanes.Cars = []Car{{X: 300, Y: 550, W: 80, H: 40}}

	horns := 0
	first := int64(-1)
	for i := 0; i < 200; i++ {
		n := countSound(w.Tick(nil), core.SoundHorn)
		if n > 0 && first < 0 {
			first = w.Now
		}
		horns += n
	}

	if first != 30 {
		t.Errorf("first honk at %dms, expected 30", first)
	}
	if horns != 2 {
		t.Errorf("honked %d times in 6s with a 5s cooldown, expected 2", horns)
	}
}

func TestHornOutOfRange(t *testing.T) {
	cfg := quietConfig()
	cfg.Horn.Enabled = true
	w := NewWorld(cfg, core.NewRand(1))
	w.Lanes.Cars = []Car{{X: 350, Y: 550, W: 80, H: 40}}

	for i := 0; i < 50; i++ {
		if countSound(w.Tick(nil), core.SoundHorn) > 0 {
			t.Fatal("car 100px away should not honk")
		}
	}
}

func TestPauseFreezesTime(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))

	w.Tick([]core.Action{core.ActionPause})
	if !w.State.Paused || w.State.Message != MessagePaused {
		t.Fatal("expected paused state")
	}
	w.Tick([]core.Action{core.ActionUp})
	if w.Now != 0 || w.Player.Y != 550 {
		t.Errorf("paused world moved: now=%d y=%d", w.Now, w.Player.Y)
	}

	w.Tick([]core.Action{core.ActionPause})
	if w.State.Paused || w.Now != 30 {
		t.Errorf("unpause should resume ticking, paused=%v now=%d", w.State.Paused, w.Now)
	}
}

func TestRestart(t *testing.T) {
	cfg := quietConfig()
	cfg.Rules.LossPolicy = config.LossInstant
	w := NewWorld(cfg, core.NewRand(1))

	// Restart is ignored while playing
	w.Tick([]core.Action{core.ActionUp})
	w.Tick([]core.Action{core.ActionRestart})
	if w.Player.Y != 500 {
		t.Fatal("restart during play should be ignored")
	}

	w.Player.Reset(250, 150)
	w.Tick(nil)
	if !w.State.Terminal() {
		t.Fatal("expected round to be over")
	}

	w.Tick([]core.Action{core.ActionRestart})
	if w.State.Status != StatusPlaying || w.State.Score != 0 || w.State.Message != "" {
		t.Errorf("restart should reset state, got %+v", w.State)
	}
	if w.State.Lives != cfg.Rules.Lives {
		t.Errorf("Lives = %d, expected %d", w.State.Lives, cfg.Rules.Lives)
	}
	if w.Player.X != 250 || w.Player.Y != 550 {
		t.Errorf("player not at start after restart: (%d, %d)", w.Player.X, w.Player.Y)
	}
	for i, f := range w.Frogs {
		if f.Collected {
			t.Errorf("frog %d still collected after restart", i)
		}
	}
}

func TestProgressScoring(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionUp, core.ActionUp} {
		sounds := w.Tick([]core.Action{a})
		if countSound(sounds, core.SoundHop) != 1 {
			t.Errorf("%v should raise a hop sound, got %v", a, sounds)
		}
	}
	if w.State.Score != 2*PointsPerRow {
		t.Errorf("Score = %d, expected %d", w.State.Score, 2*PointsPerRow)
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := quietConfig()
	cfg.Cars.Lanes = 1
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "collected", MaxAt: 5},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1.0},
	}
	w := NewWorld(cfg, core.NewRand(3))
	if w.SpeedFactor() != 1.0 {
		t.Fatalf("initial factor = %v, expected 1", w.SpeedFactor())
	}

	w.Player.Reset(100, 60)
	w.Tick(nil)
	w.Tick(nil)

	if w.SpeedFactor() <= 1.0 {
		t.Errorf("factor should grow after a collection, got %v", w.SpeedFactor())
	}
	for i, car := range w.Lanes.Cars {
		if core.Abs(car.Speed) < core.Abs(car.BaseSpeed) {
			t.Errorf("car %d slowed down: %d < %d", i, car.Speed, car.BaseSpeed)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	w1 := NewWorld(cfg, core.NewRand(12345))
	w2 := NewWorld(cfg, core.NewRand(12345))

	script := []core.Action{core.ActionUp, core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := 0; i < 1000; i++ {
		var cmds []core.Action
		if i%7 == 0 {
			cmds = append(cmds, script[(i/7)%len(script)])
		}
		if i%300 == 299 {
			cmds = append(cmds, core.ActionRestart)
		}
		w1.Tick(cmds)
		w2.Tick(cmds)

		s1, s2 := w1.Snapshot(), w2.Snapshot()
		if s1.Hash() != s2.Hash() {
			t.Fatalf("worlds diverged at tick %d", i)
		}
	}
}

func TestSnapshotHidesCollectedAndReportsHUD(t *testing.T) {
	w := NewWorld(quietConfig(), core.NewRand(1))
	w.Player.Reset(100, 60)
	w.Tick(nil)

	snap := w.Snapshot()
	if len(snap.Frogs) != 4 || snap.FrogsTotal != 5 || snap.FrogsCollected != 1 {
		t.Errorf("snapshot frogs = %d visible, %d/%d", len(snap.Frogs), snap.FrogsCollected, snap.FrogsTotal)
	}
	if snap.Lives != 3 || snap.Status != StatusPlaying {
		t.Errorf("snapshot HUD = lives %d status %v", snap.Lives, snap.Status)
	}
	if snap.RoadTop != 200 || snap.RoadBottom != 450 || snap.WaterTop != 100 {
		t.Errorf("bands = water %d road %d-%d", snap.WaterTop, snap.RoadTop, snap.RoadBottom)
	}
}
