package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crosser/internal/registry"
	"github.com/vovakirdan/tui-crosser/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show aggregated play statistics",
	Long: `Display aggregated statistics: games played, best and average
score, deepest wave reached.

Examples:
  crosser stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := "crosser"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", gameID)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:   %d\n", stats.TotalScore)
	if stats.BestWave > 0 {
		fmt.Printf("  Deepest wave:  %d\n", stats.BestWave)
	}
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
