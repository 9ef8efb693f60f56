// crosser is a terminal lane-crosser arcade game.
//
// Usage:
//
//	crosser play             - Play the game
//	crosser list             - List registered games
//	crosser scores           - Show high scores
//	crosser stats            - Show aggregated play statistics
//	crosser serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 100)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.crosser/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crosser/internal/games/crosser"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crosser",
	Short: "Lane Crosser - hop across traffic and the river in your terminal",
	Long: `Lane Crosser is a terminal arcade game: guide the hopper across four
lanes of traffic and a river full of logs, crocs and turtle packs to the
landing zones at the top. Claim all five zones to advance a wave; every
wave is faster than the last.

Available commands:
  play     - Play the game
  list     - Show registered games
  scores   - View high scores and recent runs
  stats    - Aggregated play statistics
  serve    - Start SSH server for remote play

Examples:
  crosser play
  crosser play --difficulty hard
  crosser serve --ssh :2222
  crosser scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crosser/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
