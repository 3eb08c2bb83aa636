package walk

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-motion/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func TestWalkCycleAdvancesAtFPS(t *testing.T) {
	g := newTestGame(t)
	if g.Frame() != "playerRed_walk1.png" {
		t.Fatalf("first frame = %q", g.Frame())
	}

	// 10ms ticks: a 24 FPS frame is due every fifth tick.
	var seen []string
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame(), 10*time.Millisecond)
		if len(seen) == 0 || seen[len(seen)-1] != g.Frame() {
			seen = append(seen, g.Frame())
		}
	}
	want := []string{"playerRed_walk1.png", "playerRed_walk2.png", "playerRed_walk3.png", "playerRed_walk2.png", "playerRed_walk1.png"}
	if strings.Join(seen, ",") != strings.Join(want, ",") {
		t.Errorf("frames = %v, expected %v", seen, want)
	}
}

func TestPlantScrollsAndWraps(t *testing.T) {
	g := newTestGame(t)
	if g.PlantX() != 106 {
		t.Fatalf("plant starts at %v, expected 106", g.PlantX())
	}

	g.Step(core.NewInputFrame(), 500*time.Millisecond)
	if g.PlantX() != 10 {
		t.Errorf("plant at %v, expected 10 after half a second", g.PlantX())
	}

	g.Step(core.NewInputFrame(), 300*time.Millisecond)
	if g.PlantX() != 192 {
		t.Errorf("plant at %v, expected wrap to 192", g.PlantX())
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, 100*time.Millisecond)

	x := g.PlantX()
	g.Step(core.NewInputFrame(), 100*time.Millisecond)
	if g.PlantX() != x {
		t.Error("plant should not move while paused")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(48, 25)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "frame 1/4") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(24), "█") {
		t.Errorf("bottom row should be ground, got %q", screen.Row(24))
	}
	if !strings.Contains(screen.String(), "▓") {
		t.Error("walking player should be drawn")
	}
}

func TestResizeKeepsScroll(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame(), 100*time.Millisecond)
	x := g.PlantX()

	g.Resize(40, 12)
	if g.PlantX() != x {
		t.Errorf("plant x = %v after resize, expected %v", g.PlantX(), x)
	}
}
