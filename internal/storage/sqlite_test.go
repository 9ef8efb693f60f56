package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := newTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("crosser", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("crosser", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("crosser", i*100); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("crosser", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := newTestStore(t)

	// No scores yet
	high, err := store.HighScore("crosser")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("crosser", 300)
	store.SaveScore("crosser", 700)
	store.SaveScore("crosser", 100)

	high, err = store.HighScore("crosser")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected high score 700, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("crosser", 100)
	store.SaveScore("crosser", 200)

	if err := store.ClearScores("crosser"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("crosser", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreRuns(t *testing.T) {
	store := newTestStore(t)

	runs := []RunRecord{
		{GameID: "crosser", Score: 500, WaveReached: 2, ZonesClaimed: 7, EndReason: "game_over", Duration: 95},
		{GameID: "crosser", Score: 1200, WaveReached: 3, ZonesClaimed: 12, EndReason: "game_over", Duration: 210},
		{GameID: "crosser", Score: 100, WaveReached: 1, ZonesClaimed: 1, EndReason: "quit", Duration: 30},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("crosser", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	best, err := store.BestRun("crosser")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil {
		t.Fatal("BestRun() returned nil with runs recorded")
	}
	if best.Score != 1200 || best.WaveReached != 3 {
		t.Errorf("Best run = %d points at wave %d, want 1200 at wave 3", best.Score, best.WaveReached)
	}
}

func TestStoreBestRunEmpty(t *testing.T) {
	store := newTestStore(t)

	best, err := store.BestRun("crosser")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run for empty table, got %+v", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("crosser", 100)
	store.SaveScore("crosser", 300)
	store.SaveRun(RunRecord{GameID: "crosser", Score: 300, WaveReached: 4, EndReason: "game_over"})

	stats, err := store.GetGameStats("crosser")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestWave != 4 {
		t.Errorf("BestWave = %d, want 4", stats.BestWave)
	}
}
