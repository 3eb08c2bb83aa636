package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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
		if _, err := store.SaveScore("platformer", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("balls", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled from the database")
	}

	other, err := store.TopScores("balls", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 balls score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
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
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 200)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 200)
	store.SaveScore("balls", 300)
	store.SaveClear(ClearEntry{GameID: "platformer", LevelID: "01-meadow", Elapsed: time.Second, Score: 2900})

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("platformer", 10); len(scores) != 0 {
		t.Errorf("Expected 0 platformer scores after clear, got %d", len(scores))
	}
	if clears, _ := store.BestClears("platformer", "01-meadow", 10); len(clears) != 0 {
		t.Errorf("Expected level clears to be removed, got %d", len(clears))
	}
	if scores, _ := store.TopScores("balls", 10); len(scores) != 1 {
		t.Error("balls scores should not be affected by clearing platformer")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreBestClears(t *testing.T) {
	store := openTestStore(t)

	times := []time.Duration{
		12500 * time.Millisecond,
		9 * time.Second,
		20 * time.Second,
	}
	for _, d := range times {
		if _, err := store.SaveClear(ClearEntry{GameID: "platformer", LevelID: "01-meadow", Elapsed: d, Score: 100}); err != nil {
			t.Fatalf("SaveClear() failed: %v", err)
		}
	}
	store.SaveClear(ClearEntry{GameID: "platformer", LevelID: "02-steps", Elapsed: time.Second})

	best, err := store.BestClears("platformer", "01-meadow", 2)
	if err != nil {
		t.Fatalf("BestClears() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 clears with limit, got %d", len(best))
	}
	if best[0].Elapsed != 9*time.Second || best[1].Elapsed != 12500*time.Millisecond {
		t.Errorf("clears not fastest first: %v, %v", best[0].Elapsed, best[1].Elapsed)
	}
	if best[0].LevelID != "01-meadow" || best[0].Score != 100 {
		t.Errorf("unexpected entry: %+v", best[0])
	}

	levels, err := store.ClearedLevels("platformer")
	if err != nil {
		t.Fatalf("ClearedLevels() failed: %v", err)
	}
	if len(levels) != 2 || levels[0] != "01-meadow" || levels[1] != "02-steps" {
		t.Errorf("ClearedLevels() = %v", levels)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.motion/deep/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".motion", "deep", "scores.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := parseTime("2024-03-01 12:30:00"); !got.Equal(want) {
		t.Errorf("parseTime(string) = %v, expected %v", got, want)
	}
	if got := parseTime(want); !got.Equal(want) {
		t.Errorf("parseTime(time) = %v", got)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("parseTime(int) = %v, expected zero", got)
	}
}
