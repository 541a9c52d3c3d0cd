package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecentRoundTrip(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	first, err := store.Append("game.card", base, 3)
	if err != nil {
		t.Fatalf("Append (first): %v", err)
	}
	second, err := store.Append("game.card", base.Add(time.Minute), 0)
	if err != nil {
		t.Fatalf("Append (second): %v", err)
	}

	runs, err := store.Recent("game.card", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Fatalf("got runs in wrong order: %+v", runs)
	}
	if runs[0].DiagnosticCount != 0 || runs[1].DiagnosticCount != 3 {
		t.Fatalf("got diagnostic counts %d, %d; want 0, 3", runs[0].DiagnosticCount, runs[1].DiagnosticCount)
	}
}

func TestRecentFiltersByFilePath(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)

	if _, err := store.Append("a.card", now, 1); err != nil {
		t.Fatalf("Append a.card: %v", err)
	}
	if _, err := store.Append("b.card", now, 2); err != nil {
		t.Fatalf("Append b.card: %v", err)
	}

	runs, err := store.Recent("a.card", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 || runs[0].FilePath != "a.card" {
		t.Fatalf("got %+v, want exactly one run for a.card", runs)
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := store.Append("game.card", now.Add(time.Duration(i)*time.Minute), i); err != nil {
			t.Fatalf("Append run %d: %v", i, err)
		}
	}

	runs, err := store.Recent("game.card", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2 (limit)", len(runs))
	}
	if runs[0].DiagnosticCount != 4 || runs[1].DiagnosticCount != 3 {
		t.Fatalf("got %+v, want the two most recent runs (counts 4, 3)", runs)
	}
}
