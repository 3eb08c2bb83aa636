package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/registry"
	"github.com/vovakirdan/tui-motion/internal/storage"
)

// Model is the Bubble Tea model that drives a single demo.
//
// Key presses are collected between ticks. Movement keys are fed through a
// KeyState so that auto-repeat looks like a held key; everything else is a
// one-shot action delivered with the next tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *core.KeyState
	clock      *core.FrameClock
	fps        *core.FPSCounter
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	showFPS    bool
	quitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       core.NewKeyState(cfg.HoldWindow),
		clock:      core.NewFrameClock(core.MaxFrameTime),
		fps:        core.NewFPSCounter(time.Second),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		showFPS:    true,
		quitOnBack: true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.clock.Reset()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			log.Warn("screenshot failed", "error", err)
		} else {
			log.Debug("screenshot saved", "path", path)
		}
		return m, nil
	case "f":
		m.showFPS = !m.showFPS
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		// Leaving mid-run would drop the score, so only allow it when
		// nothing is in progress.
		if m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
	case IsHoldAction(action):
		m.keys.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize resizes the screen buffer and tells the game. Games that do
// not implement registry.Resizer start over at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	m.fps.OnUpdate(now)
	m.keys.Fill(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// A restart or a new level clears GameOver; the next run gets its own save.
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// clearReporter is implemented by demos with levels that can report the
// level that just ended the run.
type clearReporter interface {
	LastClear() (levelID string, elapsed time.Duration, ok bool)
}

func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		log.Warn("could not save score", "game", m.game.ID(), "error", err)
	}

	r, ok := m.game.(clearReporter)
	if !ok {
		return
	}
	level, elapsed, ok := r.LastClear()
	if !ok {
		return
	}
	entry := storage.ClearEntry{
		GameID:  m.game.ID(),
		LevelID: level,
		Elapsed: elapsed,
		Score:   m.gameState.Score,
	}
	if _, err := m.store.SaveClear(entry); err != nil {
		log.Warn("could not save level time", "game", m.game.ID(), "level", level, "error", err)
	}
}

// saveScreenshot saves the current screen as plain text under the user
// directory and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	dir := config.UserPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// render draws the game and the FPS overlay into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.game.Render(m.screen)

	if m.showFPS {
		label := fmt.Sprintf(" %d fps", m.fps.FPS())
		x := m.screen.Width() - len(label)
		if x >= 0 {
			m.screen.DrawTextColor(x, 0, label, core.ColorGray)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
