package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/registry"
	"github.com/vovakirdan/tui-motion/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <demo>",
	Short: "Show high scores for a demo",
	Long: `Display the top 10 high scores for the specified demo, followed by
the fastest clear of every level that has one.

Examples:
  motion scores platformer`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'motion list' to see available demos.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'motion play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	printLevelTimes(store, gameID)
}

// printLevelTimes lists the fastest clear per level.
func printLevelTimes(store *storage.Store, gameID string) {
	levels, err := store.ClearedLevels(gameID)
	if err != nil || len(levels) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Best Times")
	fmt.Println()
	fmt.Printf("  %-16s  %-9s  %s\n", "Level", "Time", "Date")
	fmt.Printf("  %-16s  %-9s  %s\n", "-----", "----", "----")
	for _, id := range levels {
		best, err := store.BestClears(gameID, id, 1)
		if err != nil || len(best) == 0 {
			continue
		}
		e := best[0]
		fmt.Printf("  %-16s  %8.2fs  %s\n", id, e.Elapsed.Seconds(), e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
