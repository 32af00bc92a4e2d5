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
	store := openTestStore(t)

	results := []Result{
		{GameID: "dodger", Score: 3, Won: false, Duration: 12 * time.Second},
		{GameID: "dodger", Score: 45, Won: true, Duration: 45 * time.Second},
		{GameID: "dodger", Score: 20, Won: false, Duration: 20 * time.Second},
		{GameID: "basketball", Score: 3, Won: true, Duration: 30 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults("dodger", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Wins sort first, then by score.
	wantScores := []int{45, 20, 3}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}
	if !top[0].Won {
		t.Error("top[0] should be a win")
	}
	if top[0].Duration != 45*time.Second {
		t.Errorf("top[0].Duration = %v, want 45s", top[0].Duration)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopResultsTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "basketball", Score: 3, Won: true, Duration: 40 * time.Second})
	store.SaveResult(Result{GameID: "basketball", Score: 3, Won: true, Duration: 25 * time.Second})

	top, err := store.TopResults("basketball", 0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(top))
	}
	if top[0].Duration != 25*time.Second {
		t.Errorf("faster win should rank first, got %v", top[0].Duration)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveResult(Result{GameID: "dodger", Score: i})
	}

	top, err := store.TopResults("dodger", 5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 results, got %d", len(top))
	}
	if top[0].Score != 14 {
		t.Errorf("Expected best score 14, got %d", top[0].Score)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		game := "dodger"
		if i%2 == 0 {
			game = "basketball"
		}
		store.SaveResult(Result{GameID: game, Score: i})
	}

	recent, err := store.RecentResults(0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 20 {
		t.Errorf("Expected 20 results, got %d", len(recent))
	}
	if recent[0].Score != 24 {
		t.Errorf("Expected latest score 24, got %d", recent[0].Score)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "dodger", Score: 10})
	store.SaveResult(Result{GameID: "basketball", Score: 2})

	if err := store.ClearResults("dodger"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopResults("dodger", 10)
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
	}
	top, _ = store.TopResults("basketball", 10)
	if len(top) != 1 {
		t.Errorf("Other games should be untouched, got %d results", len(top))
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "dodger", Score: 10})
	store.SaveResult(Result{GameID: "dodger", Score: 45, Won: true})
	store.SaveResult(Result{GameID: "basketball", Score: 3, Won: true})

	stats, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}

	tests := []struct {
		game      string
		played    int
		wins      int
		highScore int
	}{
		{"dodger", 2, 1, 45},
		{"basketball", 1, 1, 3},
	}
	for _, tt := range tests {
		gs, ok := stats[tt.game]
		if !ok {
			t.Errorf("missing stats for %s", tt.game)
			continue
		}
		if gs.Played != tt.played || gs.Wins != tt.wins || gs.HighScore != tt.highScore {
			t.Errorf("%s stats = %+v, want played=%d wins=%d high=%d",
				tt.game, gs, tt.played, tt.wins, tt.highScore)
		}
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
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.trials/x.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".trials", "x.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	got, _ = ExpandHome("/abs/path")
	if got != "/abs/path" {
		t.Errorf("absolute path changed to %q", got)
	}
}
