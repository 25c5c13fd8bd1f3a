package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// saveScore records a bare run with the given score.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, _, err := store.SaveRun(Run{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		saveScore(t, store, "tigrao", score)
	}
	saveScore(t, store, "tigrao_mini", 500)

	scores, err := store.TopScores("tigrao", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	for _, s := range scores {
		if s.RunID == "" {
			t.Error("SaveRun() should assign a run id")
		}
	}

	mini, err := store.TopScores("tigrao_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(mini) != 1 {
		t.Errorf("Expected 1 tigrao_mini score, got %d", len(mini))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	_, runID, err := store.SaveRun(Run{GameID: "tigrao", Score: 145, Passes: 9, Rows: 8, Cols: 8})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if runID == "" {
		t.Fatal("SaveRun() returned an empty run id")
	}

	entry, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("RunByID() found nothing")
	}
	if entry.Score != 145 || entry.Passes != 9 || entry.Rows != 8 || entry.Cols != 8 {
		t.Errorf("RunByID() = %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreSaveRunErrors(t *testing.T) {
	store := openTestStore(t)

	if _, _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}

	run := Run{ID: "fixed-id", GameID: "tigrao", Score: 10}
	if _, _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, _, err := store.SaveRun(run); err == nil {
		t.Error("saving the same run id twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to ten
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tigrao")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "tigrao", 100)
	saveScore(t, store, "tigrao", 300)
	saveScore(t, store, "tigrao", 200)

	high, err = store.HighScore("tigrao")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "tigrao", 100)
	saveScore(t, store, "tigrao", 200)
	saveScore(t, store, "tigrao_big", 300)

	if err := store.ClearScores("tigrao"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tigrao", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 tigrao scores after clear, got %d", len(scores))
	}

	big, _ := store.TopScores("tigrao_big", 10)
	if len(big) != 1 {
		t.Errorf("tigrao_big scores should not be affected by clearing tigrao")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tigrao")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed game = %+v", empty)
	}

	store.SaveRun(Run{GameID: "tigrao", Score: 100, Passes: 4, Rows: 8, Cols: 8})
	store.SaveRun(Run{GameID: "tigrao", Score: 300, Passes: 12, Rows: 8, Cols: 8})
	store.SaveRun(Run{GameID: "tigrao_mini", Score: 40, Passes: 2, Rows: 5, Cols: 5})

	stats, err := store.GetGameStats("tigrao")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.MaxPasses != 12 {
		t.Errorf("MaxPasses = %d, want 12", stats.MaxPasses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() returned %d games, want 2", len(all))
	}
	if all["tigrao_mini"].HighScore != 40 {
		t.Errorf("tigrao_mini high score = %d, want 40", all["tigrao_mini"].HighScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
