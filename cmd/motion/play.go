package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/games/platformer"
	"github.com/vovakirdan/tui-motion/internal/platform/tui"
	"github.com/vovakirdan/tui-motion/internal/registry"
)

var (
	flagConfig   string
	flagLevel    string
	flagLevelDir string
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  Enter            - Next level (after clearing one)
  P/Esc            - Pause
  R                - Restart
  B                - Back (while paused or after a clear)
  F                - Toggle FPS counter
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a key counts as held until --hold
passes without an auto-repeat.

Examples:
  motion play balls
  motion play bouncing --config ./my-balls.yaml
  motion play platformer
  motion play platformer --level 02-steps
  motion play platformer --level-dir ./levels
  motion play walk --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Platformer level ID to start from (skips the level picker)")
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with extra platformer level YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'motion list' to see available demos.")
		os.Exit(1)
	}

	if err := checkDemoConfig(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	applyDemoFlags(gameID)

	if gameID == "platformer" && flagLevel == "" {
		selection, err := tui.RunLevelSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}
		platformer.SetStartLevel(selection.ID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}
