package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tigrao/internal/platform/tui"
	"github.com/vovakirdan/tigrao/internal/registry"
	"github.com/vovakirdan/tigrao/internal/storage"
)

var (
	flagSpeed      float64
	flagPickSpeed  bool
	defaultBoardID = "tigrao"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start the simulation on the specified board (default: tigrao).

The board is scanned for runs of three or more identical symbols in rows
and columns. Matched tiles flash, get cleared, the rest fall and new tiles
drop in from the top. The game ends when no run is left.

Controls:
  Space/Enter/P  - Start or pause
  N/R            - New game
  +/Up/Right     - Faster (0.1 steps, up to 2.0x)
  -/Down/Left    - Slower (down to 0.5x)
  ?/H            - How to play
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Examples:
  tigrao play
  tigrao play tigrao_big
  tigrao play --speed 1.5
  tigrao play --pick-speed
  tigrao play --config ./my-tigrao.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Starting speed multiplier (0.5-2.0, 0 = config default)")
	playCmd.Flags().BoolVar(&flagPickSpeed, "pick-speed", false, "Choose the starting speed before playing")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultBoardID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if board exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tigrao list' to see available boards.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	speed := flagSpeed
	if flagPickSpeed {
		picked, ok, pickErr := tui.RunSpeedSelector(game.Title(), cfg)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if !ok {
			return
		}
		speed = picked
	}
	if s, ok := game.(tui.SpeedSetter); ok && speed > 0 {
		s.SetStartSpeed(speed)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	result, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if result.LastRunID != "" {
		fmt.Printf("Run saved: %s\n", result.LastRunID)
		fmt.Printf("Run 'tigrao scores --run %s' to look it up.\n", result.LastRunID)
	}
}
