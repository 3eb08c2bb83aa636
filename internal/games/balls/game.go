package balls

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/registry"
)

// BallGlyph fills the cells covered by a ball.
const BallGlyph = '█'

// hudRows is the number of screen rows reserved above the container.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game runs a ball simulation sized to the terminal.
type Game struct {
	bouncing bool // collisions forced on

	sim      *Simulation
	rng      *rand.Rand
	contacts int
	paused   bool

	runtime core.RuntimeConfig
	cfg     config.BallsConfig
}

// New creates the simple demo. Collisions follow the config (off by default).
func New() *Game {
	return &Game{}
}

// NewBouncing creates the demo with ball-to-ball collisions enabled.
func NewBouncing() *Game {
	return &Game{bouncing: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.bouncing {
		return "bouncing"
	}
	return "balls"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.bouncing {
		return "Bouncing Balls"
	}
	return "Simple Balls"
}

// Reset seeds the generator from the runtime config and builds a fresh
// population.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.populate()
}

// populate loads the config and builds a new population from the running
// generator, so each restart gets new balls.
func (g *Game) populate() {
	cfg, err := config.LoadBalls(configPath)
	if err != nil {
		cfg = config.DefaultBallsConfig()
	}
	if cfg.Cell.Width <= 0 || cfg.Cell.Height <= 0 {
		cfg.Cell = config.DefaultBallsConfig().Cell
	}
	g.cfg = cfg

	w, h := g.worldSize()
	settings := NewSettings().
		WithVelocity(cfg.Velocity.Min, cfg.Velocity.Max).
		WithRadius(cfg.Radius.Min, cfg.Radius.Max).
		WithMaxPos(w, h)
	if len(cfg.Color) == 3 {
		settings = settings.WithColor(core.RGB(cfg.Color[0], cfg.Color[1], cfg.Color[2]))
	}

	balls := make([]Ball, 0, core.Max(cfg.Count, 0))
	for id := 0; id < cfg.Count; id++ {
		balls = append(balls, settings.Build(id, g.rng))
	}

	g.sim = NewSimulation(balls, w, h, g.bouncing || cfg.Collisions)
	g.contacts = 0
	g.paused = false
}

// Resize changes the container to the new terminal size, keeping the balls.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.sim != nil {
		g.sim.Resize(g.worldSize())
	}
}

// worldSize returns the container size in pixels for the current screen.
func (g *Game) worldSize() (float64, float64) {
	cols := core.Max(g.runtime.ScreenW, 1)
	rows := core.Max(g.runtime.ScreenH-hudRows, 1)
	return float64(cols) * g.cfg.Cell.Width, float64(rows) * g.cfg.Cell.Height
}

// Step advances the simulation by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.populate()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.contacts += g.sim.Step(dt.Seconds())
	return core.StepResult{State: g.State()}
}

// Render draws every ball as a filled ellipse below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	vp := core.NewViewport(g.sim.Width, g.sim.Height, dst.Width(), dst.Height()-hudRows, hudRows)

	for i := range g.sim.Balls {
		b := g.sim.Balls[i].Bounds()
		x, y := vp.ToCell(b.X, b.Y)
		dst.FillEllipse(x, y, b.W/vp.CellW(), b.H/vp.CellH(), core.Cell{
			Rune:  BallGlyph,
			Color: g.sim.Balls[i].Color,
		})
	}

	mode := "walls"
	if g.sim.Collide {
		mode = "collide"
	}
	dst.DrawText(0, 0, fmt.Sprintf("%s  balls:%d  contacts:%d  [%s]",
		g.Title(), len(g.sim.Balls), g.contacts, mode))

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// State returns the current game state. The score is the number of ball
// contacts resolved since the last reset; the demo never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.contacts,
		Paused: g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("balls", func() registry.Game {
		return New()
	})
	registry.Register("bouncing", func() registry.Game {
		return NewBouncing()
	})
}
