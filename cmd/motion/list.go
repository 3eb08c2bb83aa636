package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/atlas"
	"github.com/vovakirdan/tui-motion/internal/games/platformer"
	"github.com/vovakirdan/tui-motion/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all registered demos.`,
	Run:   runList,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List platformer levels",
	Long: `Shows the builtin platformer levels merged with levels from
~/.motion/levels and --level-dir. Later sources replace levels with the
same ID.`,
	Run: runLevels,
}

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List sprites in the active sheet",
	Long: `Shows every sprite in the active sprite sheet with its source rectangle.
Use --assets to inspect a custom sheet.`,
	Run: runSprites,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with extra platformer level YAML files")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'motion play <id>' to start a demo.")
}

func runLevels(cmd *cobra.Command, args []string) {
	platformer.SetLevelPath(flagLevelDir)

	all := platformer.AvailableLevels()
	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxIDLen := 2
	for _, lvl := range all {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Name", "Source")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "----", "------")
	for _, lvl := range all {
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, lvl.ID, lvl.Name, lvl.Source)
	}

	fmt.Println()
	fmt.Println("Run 'motion play platformer --level <id>' to start at a level.")
}

func runSprites(cmd *cobra.Command, args []string) {
	sheet := atlas.Active()
	names := sheet.Names()

	fmt.Printf("Sheet: %s (%d sprites)\n", sheet.ImagePath, len(names))
	fmt.Println()

	maxLen := 4
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Printf("  %-*s  %9s  %7s  %s\n", maxLen, "Name", "Position", "Size", "Glyph")
	for _, name := range names {
		sp, _ := sheet.Sprite(name)
		fmt.Printf("  %-*s  %4.0f,%4.0f  %3.0fx%-3.0f  %c\n", maxLen, name, sp.X, sp.Y, sp.W, sp.H, sp.Glyph.Rune)
	}
}
