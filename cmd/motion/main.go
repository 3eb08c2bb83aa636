// motion is a set of terminal motion demos: bouncing balls, a tile
// platformer and sprite sheet viewers, all drawn with text cells.
//
// Usage:
//
//	motion list              - List available demos
//	motion play <demo>       - Run a demo
//	motion menu              - Start menu to pick demos interactively
//	motion serve             - Start SSH server for remote play
//	motion scores <demo>     - Show high scores and level times
//	motion levels            - List platformer levels
//	motion sprites           - List sprites in the active sheet
//	motion config <demo>     - Print a demo's default config
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.motion/scores.db)
//	--assets <dir>    - Load the sprite sheet from a directory
//	--hold <duration> - How long a key stays held after its last repeat
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/atlas"
	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"

	// Import demos to register them
	_ "github.com/vovakirdan/tui-motion/internal/games/balls"
	_ "github.com/vovakirdan/tui-motion/internal/games/platformer"
	_ "github.com/vovakirdan/tui-motion/internal/games/sheetview"
	_ "github.com/vovakirdan/tui-motion/internal/games/walk"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagAssets  string
	flagHold    time.Duration
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "motion",
	Short: "Motion demos in your terminal",
	Long: `Motion is a collection of small real-time demos drawn in the terminal:
bouncing balls, a tile platformer with a timed jump arc and sprite sheet
viewers.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and best level times
  levels   - List platformer levels
  sprites  - List sprites in the active sheet
  config   - Print a demo's default config

Examples:
  motion list
  motion play balls
  motion play platformer --level 02-steps
  motion menu
  motion serve --ssh :2222
  motion scores platformer`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.motion/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprites.xml (and optionally skin.yaml)")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", core.DefaultHoldWindow, "Key hold window for terminals without key release events")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	sheet, err := atlas.Find(flagAssets, config.UserPath("assets"))
	if err != nil {
		return fmt.Errorf("load sprite sheet: %w", err)
	}
	atlas.Use(sheet)
	log.Debug("sprite sheet ready", "image", sheet.ImagePath, "sprites", len(sheet.Names()))

	return nil
}
