// Package platformer implements a single-screen tile platformer with a
// timed jump arc: ascend, float, then descend at a fixed speed.
package platformer

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-motion/internal/atlas"
	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-motion/internal/registry"
)

const hudRows = 1

// Used when the sheet has no sprite for the configured player.
var defaultPlayerSize = core.V(39, 48)

// Package-level variables for configuration
var (
	configPath string
	levelPath  string
	startLevel string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath adds a directory of level files on top of the builtin levels.
func SetLevelPath(path string) {
	levelPath = path
}

// SetStartLevel sets the level ID to start from. Empty means the first level.
func SetStartLevel(id string) {
	startLevel = id
}

// AvailableLevels returns the builtin levels merged with those in the level
// path and the user level directory.
func AvailableLevels() []levels.Level {
	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		log.Warn("could not load builtin levels", "error", err)
	}
	sets := [][]levels.Level{builtin}
	for _, dir := range []string{config.UserPath("levels"), levelPath} {
		if dir == "" {
			continue
		}
		user, err := levels.NewLoader(dir).LoadAll()
		if err != nil {
			// The user level directory is optional.
			if dir == levelPath || !errors.Is(err, fs.ErrNotExist) {
				log.Warn("could not load levels", "dir", dir, "error", err)
			}
			continue
		}
		sets = append(sets, user)
	}
	return levels.Merge(sets...)
}

// LevelNames returns "id: name" for each available level.
func LevelNames() []string {
	all := AvailableLevels()
	names := make([]string, len(all))
	for i, lvl := range all {
		names[i] = fmt.Sprintf("%s: %s", lvl.ID, lvl.Name)
	}
	return names
}

// Game implements the platformer.
type Game struct {
	levels     []levels.Level
	levelIndex int
	start      string

	world  *Map
	player *Player
	motion Motion
	width  float64
	height float64

	elapsed float64
	score   int
	cleared bool
	paused  bool

	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	sheet   *atlas.Sheet
}

// New creates a new platformer game.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// StartAt makes the next Reset begin at the level with the given ID,
// overriding SetStartLevel for this instance.
func (g *Game) StartAt(id string) {
	g.start = id
}

// Reset loads config and levels and starts the selected level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sheet = atlas.Active()

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.cfg = cfg

	g.levels = AvailableLevels()
	want := startLevel
	if g.start != "" {
		want = g.start
	}
	g.levelIndex = 0
	for i, lvl := range g.levels {
		if lvl.ID == want {
			g.levelIndex = i
			break
		}
	}
	g.loadLevel(g.levelIndex)
}

// loadLevel builds the world for levels[index] and restarts the clock.
func (g *Game) loadLevel(index int) {
	g.elapsed = 0
	g.score = 0
	g.cleared = false
	g.paused = false

	if len(g.levels) == 0 {
		g.world = nil
		g.player = nil
		return
	}

	lvl := g.levels[index]
	g.world = NewMap(lvl)
	g.width = lvl.Size.W
	g.height = lvl.Size.H
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = g.cfg.World.Width, g.cfg.World.Height
	}
	g.motion = NewMotion(g.cfg, lvl.TileSize)

	size := defaultPlayerSize
	if w, h, ok := g.sheet.Size(g.cfg.Player.Sprite); ok {
		size = core.V(w, h)
	}
	g.player = NewPlayer(core.V(lvl.Start.X, lvl.Start.Y), size, g.motion)
}

// Step advances the world by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.player == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.loadLevel(g.levelIndex)
		return core.StepResult{State: g.State()}
	}

	if g.cleared {
		if in.Has(core.ActionConfirm) {
			g.levelIndex = (g.levelIndex + 1) % len(g.levels)
			g.loadLevel(g.levelIndex)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	secs := dt.Seconds()
	g.elapsed += secs
	g.player.Update(UpdateArgs{
		DT:      secs,
		Input:   in,
		ScreenW: g.width,
		ScreenH: g.height,
		Map:     g.world,
	})

	px, py := g.world.GridCell(g.player.Pos)
	if px == g.world.Flag.X && py == g.world.Flag.Y {
		g.world.FlagReached()
		g.cleared = true
		g.score = g.clearScore()
	}

	return core.StepResult{State: g.State()}
}

// clearScore rewards finishing under par, with a floor of 1.
func (g *Game) clearScore() int {
	return max(1, int((g.cfg.Goal.ParSeconds-g.elapsed)*100))
}

// Render draws terrain, decorations, the flag and the player.
func (g *Game) Render(dst *core.Screen) {
	if g.player == nil {
		dst.DrawMessageBox("NO LEVELS", "Add level files and restart")
		return
	}

	vp := core.NewViewport(g.width, g.height, dst.Width(), dst.Height()-hudRows, hudRows)
	ts := g.world.TileSize

	drawTile := func(t Tile) {
		w, h, ok := g.sheet.Size(t.Sprite)
		if !ok {
			return
		}
		pos := t.Coords(g.height, ts, w, h)
		g.sheet.Draw(dst, vp, t.Sprite, pos.X, pos.Y)
	}
	for _, t := range g.world.Tiles {
		drawTile(t)
	}
	for _, t := range g.world.Decorations {
		drawTile(t)
	}
	drawTile(g.world.Flag)

	sprite := g.player.Sprite()
	if w, _, ok := g.sheet.Size(sprite); ok {
		g.sheet.Draw(dst, vp, sprite,
			g.player.Pos.X-w/2,
			g.height-g.player.Pos.Y-g.player.Size.Y)
	}

	lvl := g.levels[g.levelIndex]
	dst.DrawText(0, 0, fmt.Sprintf("%s  %s  time:%5.1fs  %s",
		g.Title(), lvl.Name, g.elapsed, g.player.State()))

	switch {
	case g.cleared:
		dst.DrawMessageBox("LEVEL CLEAR",
			fmt.Sprintf("Score: %d  |  Enter next, R replay", g.score))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// State returns the current game state. A cleared level ends the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.cleared,
		Paused:   g.paused,
	}
}

// LastClear reports the level just cleared and how long it took.
// ok is false while the level is still in progress.
func (g *Game) LastClear() (levelID string, elapsed time.Duration, ok bool) {
	if !g.cleared {
		return "", 0, false
	}
	return g.levels[g.levelIndex].ID, g.Elapsed(), true
}

// Resize keeps the run going. The world is a fixed pixel space that the
// viewport rescales on every render.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// Elapsed returns the time spent on the current level.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.elapsed * float64(time.Second))
}

// Player returns the player body.
func (g *Game) Player() *Player {
	return g.player
}

// World returns the current map.
func (g *Game) World() *Map {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
