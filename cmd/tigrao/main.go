// tigrao is a match-3 tile simulation played in the terminal.
//
// Usage:
//
//	tigrao list               - List available boards
//	tigrao play [board]       - Play a board (default: tigrao)
//	tigrao menu               - Pick boards interactively
//	tigrao sim                - Run a headless simulation
//	tigrao scores [board]     - Show high scores for a board
//	tigrao serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.tigrao/scores.db)
//	--config <path>  - Load a custom tigrao.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tigrao/internal/config"
	"github.com/vovakirdan/tigrao/internal/core"
	"github.com/vovakirdan/tigrao/internal/games/tigrao"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tigrao",
	Short: "Tigrão - a match-3 simulation in your terminal",
	Long: `Tigrão fills a board with tigers, diamonds, slots, cherries and stars,
then clears every run of three, lets the tiles fall and refills the gaps
until no run is left.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker menu
  sim      - Headless simulation with logging
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tigrao list
  tigrao play
  tigrao play tigrao_mini
  tigrao sim --seed 42 --step
  tigrao serve --ssh :2222
  tigrao scores tigrao`,
	PersistentPreRun: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tigrao/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tigrao.yaml")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the YAML config once for every subcommand.
func loadConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadTigrao(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tigrao.SetConfig(cfg)
}

// runtimeConfig builds the platform config from the flags and the current
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
