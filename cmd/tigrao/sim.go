package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tigrao/internal/config"
	"github.com/vovakirdan/tigrao/internal/games/tigrao"
	"github.com/vovakirdan/tigrao/internal/games/tigrao/engine"
	"github.com/vovakirdan/tigrao/internal/storage"
)

var (
	flagSimBoard   string
	flagSimTicks   int
	flagSimRows    int
	flagSimCols    int
	flagSimSave    bool
	flagSimStep    bool
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without the TUI and report the final score.

Each tick resolves every run on the board, chained refills included, until
the board settles. The simulation stops when no run of three is left or
after --ticks ticks.

With --step every pass is printed: the scanned board with matched cells
highlighted, followed by the board after the tiles fell.

Examples:
  tigrao sim
  tigrao sim --seed 42 --step
  tigrao sim --rows 12 --cols 12 --verbose
  tigrao sim --board tigrao_mini --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimBoard, "board", defaultBoardID, "Board whose size is used")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum number of ticks")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 0, "Override board rows")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 0, "Override board columns")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the final score in the scores database")
	simCmd.Flags().BoolVar(&flagSimStep, "step", false, "Print every pass")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every tick")
}

// simOptions configure one headless run.
type simOptions struct {
	Rows     int
	Cols     int
	MaxTicks int
	Step     bool
	Engine   engine.Options
}

// simReport is the outcome of a headless run.
type simReport struct {
	Score  int
	Ticks  int
	Passes int
	Ended  bool
	Final  *engine.Grid
}

var matchedCell = lipgloss.NewStyle().Reverse(true)

func runSim(_ *cobra.Command, _ []string) {
	rows, cols, ok := tigrao.BoardSize(flagSimBoard)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", flagSimBoard)
		fmt.Fprintln(os.Stderr, "Run 'tigrao list' to see available boards.")
		os.Exit(1)
	}
	if flagSimRows > 0 {
		rows = flagSimRows
	}
	if flagSimCols > 0 {
		cols = flagSimCols
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tigrao-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := tigrao.Config()
	opts := simOptions{
		Rows:     rows,
		Cols:     cols,
		MaxTicks: flagSimTicks,
		Step:     flagSimStep,
		Engine:   engineOptions(cfg, rows, cols),
	}

	logger.Info("simulation started", "board", flagSimBoard, "rows", rows, "cols", cols, "seed", seed)

	report, err := simulate(opts, engine.NewRandSource(seed), os.Stdout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(formatBoard(report.Final, engine.Mask{}))
	fmt.Println()
	if report.Ended {
		fmt.Printf("No more matches! Final score: %d\n", report.Score)
	} else {
		fmt.Printf("Stopped after %d ticks. Score: %d\n", report.Ticks, report.Score)
	}

	logger.Info("simulation finished",
		"score", report.Score,
		"ticks", report.Ticks,
		"passes", report.Passes,
		"ended", report.Ended,
	)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	_, runID, err := store.SaveRun(storage.Run{
		GameID: flagSimBoard,
		Score:  report.Score,
		Passes: report.Passes,
		Rows:   rows,
		Cols:   cols,
	})
	if err != nil {
		logger.Error("failed to save run", "err", err)
		return
	}
	logger.Info("run saved", "run", runID)
}

func engineOptions(cfg config.TigraoConfig, rows, cols int) engine.Options {
	return engine.Options{
		Rows:           rows,
		Cols:           cols,
		Speed:          cfg.Speed.Initial,
		MaxChainPasses: cfg.Engine.MaxChainPasses,
	}
}

// simulate plays one session to the end or to opts.MaxTicks.
func simulate(opts simOptions, src engine.SymbolSource, out io.Writer, logger *log.Logger) (simReport, error) {
	eo := opts.Engine
	eo.Rows, eo.Cols = opts.Rows, opts.Cols

	session, err := engine.NewSession(eo, src)
	if err != nil {
		return simReport{}, fmt.Errorf("cannot start simulation: %w", err)
	}
	session.Start()

	ticks := 0
	for ticks < opts.MaxTicks && !session.Terminal() {
		ticks++
		if opts.Step {
			stepTick(session, ticks, maxPasses(eo), out, logger)
			continue
		}

		res := session.Tick()
		logger.Debug("tick",
			"n", ticks,
			"passes", len(res.Passes),
			"points", res.Score,
			"score", session.Score(),
		)
		if res.Capped {
			logger.Warn("chain cap reached", "n", ticks, "passes", len(res.Passes))
		}
	}

	return simReport{
		Score:  session.Score(),
		Ticks:  ticks,
		Passes: session.Passes(),
		Ended:  session.Terminal(),
		Final:  session.Grid(),
	}, nil
}

func maxPasses(o engine.Options) int {
	if o.MaxChainPasses > 0 {
		return o.MaxChainPasses
	}
	return engine.DefaultMaxChainPasses
}

// stepTick resolves one tick pass by pass, printing each of them.
func stepTick(session *engine.Session, n, limit int, out io.Writer, logger *log.Logger) {
	for i := 1; i <= limit; i++ {
		pass, ok := session.Step()
		if !ok {
			return
		}
		fmt.Fprintf(out, "tick %d pass %d: +%d (score %d)\n", n, i, pass.Score, session.Score())
		fmt.Fprintln(out, formatBoard(pass.Before, pass.Mask))
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatBoard(pass.After, engine.Mask{}))
		fmt.Fprintln(out)
		logger.Debug("pass", "tick", n, "pass", i, "points", pass.Score, "cleared", pass.Cleared)

		if !engine.HasAnyMatch(pass.After) {
			return
		}
	}
	logger.Warn("chain cap reached", "n", n, "passes", limit)
}

// formatBoard draws the grid with glyphs, reversing the masked cells.
func formatBoard(g *engine.Grid, mask engine.Mask) string {
	var sb strings.Builder
	for r := range g.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			glyph := string(g.At(r, c).Glyph())
			if mask.At(r, c) {
				glyph = matchedCell.Render(glyph)
			}
			sb.WriteString(glyph)
		}
	}
	return sb.String()
}
