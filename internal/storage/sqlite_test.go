package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionEntry{
		{Generations: 120, PeakPopulation: 44, GridWidth: 30, GridHeight: 30, DurationSecs: 12},
		{Generations: 800, PeakPopulation: 130, GridWidth: 60, GridHeight: 40, DurationSecs: 95},
		{Generations: 15, PeakPopulation: 9, GridWidth: 30, GridHeight: 30, DurationSecs: 2},
	}
	for _, e := range sessions {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(recent))
	}

	// Newest first: the last insert wins the tie on created_at via id.
	if recent[0].Generations != 15 {
		t.Errorf("expected newest session first (15 generations), got %d", recent[0].Generations)
	}
	if recent[0].GridWidth != 30 || recent[0].GridHeight != 30 {
		t.Errorf("grid dims = %dx%d, want 30x30", recent[0].GridWidth, recent[0].GridHeight)
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 7; i++ {
		if _, err := store.SaveSession(SessionEntry{
			Generations: uint64(i + 1), PeakPopulation: i, GridWidth: 10, GridHeight: 10,
		}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("expected 3 sessions with limit, got %d", len(recent))
	}
}

func TestStoreLongestRun(t *testing.T) {
	store := openTestStore(t)

	// Empty store: no longest run yet.
	longest, err := store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest != nil {
		t.Errorf("expected nil longest run on empty store, got %+v", longest)
	}

	store.SaveSession(SessionEntry{Generations: 50, GridWidth: 30, GridHeight: 30})
	store.SaveSession(SessionEntry{Generations: 999, PeakPopulation: 70, GridWidth: 30, GridHeight: 30})
	store.SaveSession(SessionEntry{Generations: 200, GridWidth: 30, GridHeight: 30})

	longest, err = store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest == nil || longest.Generations != 999 {
		t.Errorf("LongestRun() = %+v, want 999 generations", longest)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.MaxGenerations != 0 {
		t.Errorf("empty store stats = %+v, want zeros", stats)
	}

	store.SaveSession(SessionEntry{Generations: 100, GridWidth: 30, GridHeight: 30, DurationSecs: 10})
	store.SaveSession(SessionEntry{Generations: 300, GridWidth: 30, GridHeight: 30, DurationSecs: 30})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", stats.Sessions)
	}
	if stats.MaxGenerations != 300 {
		t.Errorf("MaxGenerations = %d, want 300", stats.MaxGenerations)
	}
	if stats.AvgGenerations != 200 {
		t.Errorf("AvgGenerations = %f, want 200", stats.AvgGenerations)
	}
	if stats.TotalSecs != 40 {
		t.Errorf("TotalSecs = %d, want 40", stats.TotalSecs)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{Generations: 10, GridWidth: 5, GridHeight: 5})
	store.SaveSession(SessionEntry{Generations: 20, GridWidth: 5, GridHeight: 5})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, _ := store.RecentSessions(10)
	if len(recent) != 0 {
		t.Errorf("expected 0 sessions after clear, got %d", len(recent))
	}
}
