package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bombgrid/internal/maze"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	id, err := store.SaveRun(Run{
		Input:   "maze.txt",
		X:       1,
		Y:       2,
		Size:    3,
		Summary: maze.Summary{BombsDetonated: 2, EnemiesHit: 1, EnemiesDestroyed: 3},
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() returned empty ID")
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}

	if run.Input != "maze.txt" || run.X != 1 || run.Y != 2 || run.Size != 3 {
		t.Errorf("unexpected run fields: %+v", run)
	}
	if run.Outcome != OutcomeOK {
		t.Errorf("expected default outcome %q, got %q", OutcomeOK, run.Outcome)
	}
	if run.Summary != (maze.Summary{BombsDetonated: 2, EnemiesHit: 1, EnemiesDestroyed: 3}) {
		t.Errorf("unexpected summary: %+v", run.Summary)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil, got %+v", run)
	}
}

func TestStoreKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Input: "a.txt"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("expected fixed-id, got %q", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", Input: "a.txt"}); err == nil {
		t.Error("expected error for duplicate ID")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, input := range []string{"a.txt", "b.txt", "a.txt", "c.txt"} {
		if _, err := store.SaveRun(Run{Input: input}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Input != "c.txt" || runs[1].Input != "a.txt" || runs[2].Input != "b.txt" {
		t.Errorf("unexpected order: %s, %s, %s", runs[0].Input, runs[1].Input, runs[2].Input)
	}

	runs, err = store.RunsForInput("a.txt", 0)
	if err != nil {
		t.Fatalf("RunsForInput() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs for a.txt, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastRun.IsZero() {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	runs := []Run{
		{Input: "a.txt", Summary: maze.Summary{BombsDetonated: 3, EnemiesDestroyed: 1}},
		{Input: "b.txt", Summary: maze.Summary{BombsDetonated: 1, EnemiesDestroyed: 2}},
		{Input: "c.txt", Outcome: OutcomeError, Message: "not a bomb, cannot detonate at (0,0)"},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Failed != 1 {
		t.Errorf("expected 3 runs with 1 failure, got %+v", stats)
	}
	if stats.BombsDetonated != 4 || stats.EnemiesDestroyed != 3 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun should be set")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Input: "a.txt"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after Clear, got %d", len(runs))
	}
}
