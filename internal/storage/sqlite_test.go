package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("flappy", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for flappy
	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for other
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 300)
	store.SaveScore("flappy", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.SaveScore("other", 300)

	// Clear only flappy scores
	err = store.ClearScores("flappy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}

	// Other should still have scores
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing flappy")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.flappy/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".flappy", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBestMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBest("flappy")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("LoadBest() = %d, expected 0", best)
	}
}

func TestBestSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBest("flappy", 12); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := store.SaveBest("flappy", 15); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	best, err := store.LoadBest("flappy")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 15 {
		t.Errorf("LoadBest() = %d, expected 15", best)
	}

	// Other games are independent
	if other, _ := store.LoadBest("other"); other != 0 {
		t.Errorf("LoadBest(other) = %d, expected 0", other)
	}
}

func TestBestNeverLowered(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest("flappy", 20)
	if err := store.SaveBest("flappy", 7); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	if best, _ := store.LoadBest("flappy"); best != 20 {
		t.Errorf("LoadBest() = %d, expected the higher value 20", best)
	}
}

func TestBestMalformedValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"word", "lots"},
		{"number then text", "99abc"},
		{"decimal", "50.5"},
		{"exponent", "7e3"},
		{"signed", "+5"},
		{"negative", "-3"},
		{"padded", " 7"},
		{"empty", ""},
		{"too many digits", "9999999999999999999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)

			if _, err := store.db.Exec("INSERT INTO best (game_id, value) VALUES (?, ?)", "flappy", tc.raw); err != nil {
				t.Fatal(err)
			}

			best, err := store.LoadBest("flappy")
			if !errors.Is(err, ErrMalformedBest) {
				t.Errorf("expected ErrMalformedBest, got %v", err)
			}
			if best != 0 {
				t.Errorf("malformed value should load as 0, got %d", best)
			}

			// A valid save replaces the malformed value, however small
			if err := store.SaveBest("flappy", 5); err != nil {
				t.Fatalf("SaveBest() failed: %v", err)
			}
			if best, err := store.LoadBest("flappy"); err != nil || best != 5 {
				t.Errorf("after SaveBest(5), LoadBest() = %d, %v; expected 5", best, err)
			}
		})
	}
}

func TestClearScoresClearsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 9)
	store.SaveBest("flappy", 9)
	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if best, _ := store.LoadBest("flappy"); best != 0 {
		t.Errorf("best should be cleared, got %d", best)
	}
}

func TestBestStoreAdapter(t *testing.T) {
	store := openTestStore(t)

	var bs flappy.BestStore = store.BestStore("flappy")
	if err := bs.SaveBest(4); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	// A fresh scoreboard picks up the persisted value
	sb := flappy.NewScoreboard(store.BestStore("flappy"), nil)
	if sb.Best() != 4 {
		t.Errorf("Best() = %d, expected 4", sb.Best())
	}
}
