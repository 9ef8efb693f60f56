package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crosser/internal/platform/tui"
	"github.com/vovakirdan/tui-crosser/internal/registry"
	"github.com/vovakirdan/tui-crosser/internal/storage"
)

var (
	flagRuns  bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Browse high scores and recent runs.

When stdout is a terminal this opens an interactive scoreboard
(tab switches between scores and runs). Use --plain for plain
text output suitable for pipes and scripts.

Examples:
  crosser scores
  crosser scores --plain
  crosser scores --plain --runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "With --plain, show recent runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "crosser"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crosser list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagRuns {
		printRuns(store, gameID, title)
		return
	}
	printScores(store, gameID, title)
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crosser play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printRuns(store *storage.Store, gameID, title string) {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-5s  %-6s  %-9s  %-10s  %s\n", "Score", "Wave", "Zones", "Time", "End", "Date")
	fmt.Printf("  %-10s  %-5s  %-6s  %-9s  %-10s  %s\n", "-----", "----", "-----", "----", "---", "----")

	for _, run := range runs {
		fmt.Printf("  %-10d  %-5d  %-6d  %-9s  %-10s  %s\n",
			run.Score,
			run.WaveReached,
			run.ZonesClaimed,
			(time.Duration(run.Duration) * time.Second).String(),
			run.EndReason,
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
