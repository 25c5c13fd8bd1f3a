package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tigrao/internal/registry"
	"github.com/vovakirdan/tigrao/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top scores for the specified board (default: tigrao).

Examples:
  tigrao scores
  tigrao scores tigrao_mini
  tigrao scores --limit 25
  tigrao scores --all                 # Summary of every board played
  tigrao scores --run <run-id>        # Look up a single saved run
  tigrao scores tigrao_big --clear    # Forget all tigrao_big scores`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every board")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the board")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the run with this id")
}

// errRunNotFound is returned when --run names an unknown run.
var errRunNotFound = errors.New("run not found")

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultBoardID
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok && flagScoresRun == "" && !flagScoresAll {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tigrao list' to see available boards.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScoresRun != "":
		err = printRun(os.Stdout, store, flagScoresRun)
	case flagScoresAll:
		err = printAllStats(os.Stdout, store)
	case flagScoresClear:
		err = clearScores(os.Stdout, store, info)
	default:
		err = printTopScores(os.Stdout, store, info, flagScoresLimit)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(w io.Writer, store *storage.Store, info registry.GameInfo, limit int) error {
	scores, err := store.TopScores(info.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'tigrao play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-7s  %s\n", "Rank", "Score", "Passes", "Board", "When")
	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-7s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10s  %-6d  %-7s  %s\n",
			i+1, humanize.Comma(int64(entry.Score)), entry.Passes, boardLabel(entry), humanize.Time(entry.CreatedAt))
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(info.ID); err == nil && stats != nil {
		fmt.Fprintf(w, "Best: %s over %s runs\n", humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.GamesCount)))
	}
	return nil
}

// printAllStats prints one summary line per board that has recorded runs.
func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-12s  %5s  %10s  %10s  %11s  %s\n", "Board", "Runs", "Best", "Average", "Most passes", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(w, "  %-12s  %5d  %10s  %10s  %11d  %s\n",
			id,
			st.GamesCount,
			humanize.Comma(int64(st.HighScore)),
			humanize.CommafWithDigits(st.AvgScore, 1),
			st.MaxPasses,
			humanize.Time(st.LastPlayed),
		)
	}
	return nil
}

// printRun shows a single saved run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	entry, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: %s", errRunNotFound, runID)
	}

	title := entry.GameID
	if info, ok := registry.Info(entry.GameID); ok {
		title = info.Title
	}

	fmt.Fprintf(w, "Run %s\n", entry.RunID)
	fmt.Fprintf(w, "  Board:  %s (%s)\n", title, boardLabel(*entry))
	fmt.Fprintf(w, "  Score:  %s\n", humanize.Comma(int64(entry.Score)))
	fmt.Fprintf(w, "  Passes: %d\n", entry.Passes)
	fmt.Fprintf(w, "  Played: %s (%s)\n", entry.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(entry.CreatedAt))
	return nil
}

// clearScores deletes every score of a board and reports how many went.
func clearScores(w io.Writer, store *storage.Store, info registry.GameInfo) error {
	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(info.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d scores for %s.\n", stats.GamesCount, info.Title)
	return nil
}

func boardLabel(e storage.ScoreEntry) string {
	return fmt.Sprintf("%dx%d", e.Rows, e.Cols)
}
