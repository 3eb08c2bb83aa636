// Package sheetview shows a fixed tile layout drawn from the sprite atlas.
package sheetview

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-motion/internal/atlas"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/registry"
)

// World size in pixels.
const (
	Width    = 640
	Height   = 384
	TileSize = 64
)

const hudRows = 1

// Placement is a sprite on the tile grid, y counted up from the bottom row.
type Placement struct {
	Sprite string
	X, Y   int
}

// Layout is the scene shown by the viewer.
var Layout = []Placement{
	{"tileYellow_04.png", 0, 0},
	{"tileYellow_04.png", 0, 1},
	{"tileYellow_04.png", 0, 2},
	{"tileYellow_06.png", 0, 3},
	{"tileYellow_04.png", 1, 0},
	{"tileYellow_09.png", 1, 1},
	{"tileYellow_20.png", 1, 2},
	{"tileYellow_11.png", 1, 3},
	{"tileYellow_04.png", 2, 0},
	{"tileYellow_20.png", 2, 1},
	{"tileYellow_11.png", 2, 2},
	{"tileYellow_04.png", 3, 0},
	{"tileYellow_06.png", 3, 1},
	{"tileYellow_18.png", 4, 0},
	{"tileYellow_06.png", 4, 1},
	{"tileYellow_04.png", 5, 0},
	{"tileYellow_07.png", 5, 1},
	{"tileYellow_06.png", 6, 0},
	{"tileYellow_06.png", 7, 0},
	{"tileYellow_04.png", 8, 0},
	{"tileYellow_04.png", 8, 1},
	{"tileYellow_05.png", 8, 2},
	{"tileYellow_04.png", 9, 0},
	{"tileYellow_09.png", 9, 1},
	{"tileYellow_06.png", 9, 2},
}

// Coords returns the top-left pixel of a placement in a y-down world.
func (p Placement) Coords() core.Vec2 {
	return core.V(float64(p.X*TileSize), float64(Height-(1+p.Y)*TileSize))
}

// Game renders the static layout.
type Game struct {
	sheet  *atlas.Sheet
	paused bool
}

// New creates the sprite sheet viewer.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sprites"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sprite Sheet"
}

// Reset picks up the active sprite sheet.
func (g *Game) Reset(core.RuntimeConfig) {
	g.sheet = atlas.Active()
	g.paused = false
}

// Step only handles pause; the scene is static.
func (g *Game) Step(in core.InputFrame, _ time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

// Resize is a no-op; the layout is scaled to the screen when rendered.
func (g *Game) Resize(int, int) {}

// Render draws every placement.
func (g *Game) Render(dst *core.Screen) {
	vp := core.NewViewport(Width, Height, dst.Width(), dst.Height()-hudRows, hudRows)
	drawn := 0
	for _, p := range Layout {
		pos := p.Coords()
		if g.sheet.Draw(dst, vp, p.Sprite, pos.X, pos.Y) {
			drawn++
		}
	}
	dst.DrawText(0, 0, fmt.Sprintf("%s  %d sprites  %d tiles", g.Title(), len(g.sheet.Names()), drawn))

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Register the game with the registry
func init() {
	registry.Register("sprites", func() registry.Game {
		return New()
	})
}
