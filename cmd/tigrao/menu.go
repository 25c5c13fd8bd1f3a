package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tigrao/internal/platform/tui"
	"github.com/vovakirdan/tigrao/internal/registry"
	"github.com/vovakirdan/tigrao/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start tigrao with a board picker menu",
	Long: `Start tigrao in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board, then choose
a starting speed. Press B or Esc on a paused game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tigrao menu
  tigrao menu --fps 30
  tigrao menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()
	lastRunID := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		speed, ok, speedErr := tui.RunSpeedSelector(menuResult.Title, cfg)
		if speedErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", speedErr)
			continue
		}
		// User pressed back or quit
		if !ok {
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if s, isSetter := game.(tui.SpeedSetter); isSetter && speed > 0 {
			s.SetStartSpeed(speed)
		}

		// Fresh board every time unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if result.LastRunID != "" {
			lastRunID = result.LastRunID
		}
		if !result.BackToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}

	if lastRunID != "" {
		fmt.Printf("Last run saved: %s\n", lastRunID)
	}
}
