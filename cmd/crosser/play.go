package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crosser/internal/core"
	"github.com/vovakirdan/tui-crosser/internal/games/crosser"
	"github.com/vovakirdan/tui-crosser/internal/platform/tui"
	"github.com/vovakirdan/tui-crosser/internal/registry"
	"github.com/vovakirdan/tui-crosser/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. Without an argument the lane crosser is launched.

Controls:
  Arrows/WASD - Hop
  P           - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - More lives, gentler wave speed-up
  normal - Default tuning
  hard   - One life, steep wave speed-up

Examples:
  crosser play
  crosser play --difficulty easy
  crosser play --config ./my-crosser.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "crosser"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crosser list' to see available games.")
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before the game is created
	if gameID == "crosser" {
		crosser.SetConfigPath(flagConfig)
		crosser.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
