package frogger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 33, Seed: 42}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{config.VariantFrogger, config.VariantClassic} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameStepAndState(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.world.TickMillis != 30 {
		t.Errorf("TickMillis = %d, expected 30 at 33 fps", g.world.TickMillis)
	}

	res := g.Step(core.NewInputFrame(core.ActionUp))
	if len(res.Sounds) == 0 || res.Sounds[0] != core.SoundHop {
		t.Errorf("expected hop sound, got %v", res.Sounds)
	}
	if res.State.Lives != 3 || res.State.GameOver {
		t.Errorf("unexpected state %+v", res.State)
	}
	if g.Snapshot().Player.Y != 500 {
		t.Errorf("player Y = %d, expected 500", g.Snapshot().Player.Y)
	}
}

func TestClassicVariant(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())

	cfg := g.Config()
	if cfg.Rules.LossPolicy != config.LossInstant || cfg.Rules.Goal != config.GoalReachTop {
		t.Errorf("classic rules = %+v", cfg.Rules)
	}
	if g.Title() != "Frogger (Classic)" {
		t.Errorf("Title() = %q", g.Title())
	}

	g.Step(core.NewInputFrame(core.ActionUp))
	if snap := g.Snapshot(); snap.Moving || snap.Player.Y != 500 {
		t.Error("classic step should land immediately")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1, g2 := New(), New()
	g1.Reset(testRuntime())
	g2.Reset(testRuntime())

	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Push(core.ActionUp)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Error("same seed and inputs should give identical snapshots")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Frogger", "Lives: 3", "Frogs: 0/5", "Score: 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.ContainsRune(screen.String(), WaterChar) {
		t.Error("river not drawn")
	}
	if !strings.ContainsRune(screen.String(), DefaultGlyph) {
		t.Error("player not drawn")
	}
}

func TestRenderClassicHUD(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.Contains(screen.Row(0), "Lives") || strings.Contains(screen.Row(0), "Frogs") {
		t.Errorf("classic HUD should show score only, got %q", screen.Row(0))
	}
}

func TestRenderGameOverMessage(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.world.State.Lose()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), MessageGameOver) {
		t.Error("game over message not drawn")
	}
	if !strings.Contains(screen.String(), "ENTER") {
		t.Error("restart hint not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected size warning")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame(core.ActionUp))

	g.Resize(10, 5)
	g.Step(core.NewInputFrame())
	before := g.Snapshot().Tick

	g.Resize(100, 40)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != before+1 {
		t.Error("resize should not restart the round")
	}
	if g.Snapshot().Score != PointsPerRow {
		t.Errorf("Score = %d, expected progress kept", g.Snapshot().Score)
	}
}

func TestConfigPathAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())
	if g.State().Lives != 4 {
		t.Errorf("Lives = %d, expected 4 from custom config", g.State().Lives)
	}

	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })
	g.Reset(testRuntime())
	if g.State().Lives != 2 {
		t.Errorf("Lives = %d, expected 2 on hard", g.State().Lives)
	}
}

func TestSpriteGlyph(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "frog.txt")
	if err := os.WriteFile(path, []byte("  \n🐸 frog\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadGlyph(path)
	if err != nil || r != '🐸' {
		t.Errorf("LoadGlyph = %q, %v", r, err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte(" \t\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGlyph(empty); !errors.Is(err, errEmptySprite) {
		t.Errorf("expected errEmptySprite, got %v", err)
	}

	if _, err := LoadGlyph(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	if glyphFromString("") != DefaultGlyph || glyphFromString("F") != 'F' {
		t.Error("glyphFromString fallback broken")
	}
}

func TestMissingSpriteFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	data := "player:\n  glyph: \"F\"\n  sprite_path: \"" + filepath.ToSlash(filepath.Join(t.TempDir(), "nope.txt")) + "\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())
	if g.Glyph() != 'F' {
		t.Errorf("Glyph() = %q, expected configured fallback 'F'", g.Glyph())
	}
}
