package session

import (
	"testing"

	"github.com/prittywoman/harmonyctl/internal/shared"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSession(t *testing.T) {
	t.Run("Absent At Start", func(t *testing.T) {
		s := New("")
		if s.Present() {
			t.Error("expected no credential at start")
		}
	})

	t.Run("Set Then Read", func(t *testing.T) {
		s := New("")
		s.Set("tok-123")
		if s.Token() != "tok-123" {
			t.Errorf("expected tok-123, got %s", s.Token())
		}
		if !s.Present() {
			t.Error("expected credential to be present")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		s := New("tok-123")
		s.Clear()
		if s.Present() {
			t.Error("expected credential to be cleared")
		}
	})
}

func TestSQLiteStore(t *testing.T) {
	t.Run("Load Before Save", func(t *testing.T) {
		store := newTestStore(t)

		stored, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored != nil {
			t.Errorf("expected nil before first save, got %+v", stored)
		}
	})

	t.Run("Save And Load", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.Save("tok-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored == nil || stored.Token != "tok-123" {
			t.Errorf("expected tok-123, got %+v", stored)
		}
		if stored.SavedAt.IsZero() {
			t.Error("expected saved_at to be set")
		}
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.Save("old"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Save("new"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Token != "new" {
			t.Errorf("expected new token, got %s", stored.Token)
		}
	})

	t.Run("Rejects Empty Token", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Save(""); err == nil {
			t.Error("expected error saving empty token")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.Save("tok-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored != nil {
			t.Errorf("expected nil after delete, got %+v", stored)
		}

		// Deleting again is not an error.
		if err := store.Delete(); err != nil {
			t.Fatalf("unexpected error on second delete: %v", err)
		}
	})
}
