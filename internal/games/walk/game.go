// Package walk plays a looping walk cycle over a short strip of ground
// while a plant scrolls past to fake forward motion.
package walk

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-motion/internal/atlas"
	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/registry"
)

// Frames is the walk cycle.
var Frames = []string{
	"playerRed_walk1.png",
	"playerRed_walk2.png",
	"playerRed_walk3.png",
	"playerRed_walk2.png",
}

const (
	groundSprite = "tileYellow_06.png"
	plantSprite  = "plantGreen_3.png"
	tileSize     = 64
	hudRows      = 1
)

var playerSize = core.V(39, 48)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game runs the walk cycle.
type Game struct {
	cfg   config.WalkConfig
	sheet *atlas.Sheet

	frame      int
	frameTimer float64
	plantX     float64
	paused     bool
}

// New creates the walk cycle demo.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "walk"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Walk Cycle"
}

// Reset restarts the cycle and puts the plant back at its start.
func (g *Game) Reset(core.RuntimeConfig) {
	cfg, err := config.LoadWalk(configPath)
	if err != nil {
		cfg = config.DefaultWalkConfig()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = config.DefaultWalkConfig().FPS
	}
	g.cfg = cfg
	g.sheet = atlas.Active()
	g.frame = 0
	g.frameTimer = 0
	g.plantX = cfg.PlantStart
	g.paused = false
}

// Step advances the walk cycle and scrolls the plant.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	secs := dt.Seconds()
	g.frameTimer += secs
	if g.frameTimer >= 1/float64(g.cfg.FPS) {
		g.frame = (g.frame + 1) % len(Frames)
		g.frameTimer = 0
	}

	g.plantX -= g.cfg.ScrollSpeed * secs
	if g.plantX <= g.cfg.PlantWrap {
		g.plantX = g.cfg.World.Width
	}
	return core.StepResult{State: g.State()}
}

// Resize is a no-op; the scene is scaled to the screen when rendered.
func (g *Game) Resize(int, int) {}

// Render draws the ground, the plant and the walking player.
func (g *Game) Render(dst *core.Screen) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	vp := core.NewViewport(w, h, dst.Width(), dst.Height()-hudRows, hudRows)

	for x := 0.0; x < 3*tileSize; x += tileSize {
		g.sheet.Draw(dst, vp, groundSprite, x, h-tileSize)
	}
	g.sheet.Draw(dst, vp, plantSprite, g.plantX, h-tileSize-plantHeight(g.sheet))
	g.sheet.Draw(dst, vp, g.Frame(),
		tileSize+(tileSize-playerSize.X)/2,
		h-tileSize-playerSize.Y)

	dst.DrawText(0, 0, fmt.Sprintf("%s  frame %d/%d", g.Title(), g.frame+1, len(Frames)))
	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// plantHeight sits the plant on the ground regardless of its sprite size.
func plantHeight(sheet *atlas.Sheet) float64 {
	if _, h, ok := sheet.Size(plantSprite); ok {
		return h
	}
	return 31
}

// Frame returns the current walk frame.
func (g *Game) Frame() string {
	return Frames[g.frame]
}

// PlantX returns the plant's left edge in world pixels.
func (g *Game) PlantX() float64 {
	return g.plantX
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Register the game with the registry
func init() {
	registry.Register("walk", func() registry.Game {
		return New()
	})
}
