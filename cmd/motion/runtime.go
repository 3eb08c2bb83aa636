package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/games/balls"
	"github.com/vovakirdan/tui-motion/internal/games/platformer"
	"github.com/vovakirdan/tui-motion/internal/games/walk"
	"github.com/vovakirdan/tui-motion/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		HoldWindow: flagHold,
	}
}

// openStore opens the score database. Demos still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// applyDemoFlags hands the per-demo flags to the demo packages before the
// demo is created.
func applyDemoFlags(id string) {
	switch id {
	case "balls", "bouncing":
		balls.SetConfigPath(flagConfig)
	case "platformer":
		platformer.SetConfigPath(flagConfig)
		platformer.SetLevelPath(flagLevelDir)
		platformer.SetStartLevel(flagLevel)
	case "walk":
		walk.SetConfigPath(flagConfig)
	}
}

// checkDemoConfig loads --config once so a bad file is reported before the
// demo takes over the terminal. Demos fall back to defaults on their own.
func checkDemoConfig(id string) error {
	if flagConfig == "" {
		return nil
	}
	var err error
	switch id {
	case "balls", "bouncing":
		_, err = config.LoadBalls(flagConfig)
	case "platformer":
		_, err = config.LoadPlatformer(flagConfig)
	case "walk":
		_, err = config.LoadWalk(flagConfig)
	default:
		log.Warn("demo has no config, ignoring --config", "demo", id)
	}
	return err
}
