package sessionstore

import (
	"context"
	"errors"
	"testing"

	"krk/internal/prefs"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(context.Background(), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, t.TempDir())

	if _, ok, err := store.Load(ctx, "Asha"); err != nil || ok {
		t.Fatalf("expected no session, got ok=%v err=%v", ok, err)
	}

	session := prefs.Session{ActorID: "35070", GenreID: "28", Language: "hi", DateFrom: "1980-01-01", DateTo: "1984-12-31"}
	if err := store.Save(ctx, "Asha", session); err != nil {
		t.Fatalf("Save: %v", err)
	}
	session.GenreID = "18"
	if err := store.Save(ctx, " asha ", session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load(ctx, "ASHA")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got != session {
		t.Fatalf("Load = %+v, want %+v", got, session)
	}

	rec, _, err := store.Get(ctx, "asha")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Turns != 2 || rec.User != "asha" || rec.UpdatedAt.IsZero() {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, t.TempDir())
	for _, user := range []string{"", "bo"} {
		if err := store.Save(ctx, user, prefs.Defaults("", "", "")); err != nil {
			t.Fatalf("Save(%q): %v", user, err)
		}
	}
	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}

	deleted, err := store.Delete(ctx, "default")
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = store.Delete(ctx, "nobody")
	if err != nil || deleted {
		t.Fatalf("Delete missing: deleted=%v err=%v", deleted, err)
	}
}

func TestReopenKeepsDataAndMigrations(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first, err := Open(ctx, dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.Save(ctx, "kay", prefs.Defaults("ta", "", "")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second := openStore(t, dir)
	got, ok, err := second.Load(ctx, "kay")
	if err != nil || !ok || got.Language != "ta" {
		t.Fatalf("expected persisted session, got %+v ok=%v err=%v", got, ok, err)
	}
}

func TestAcquireIsExclusive(t *testing.T) {
	dir := t.TempDir()
	first := openStore(t, dir)
	second := openStore(t, dir)

	if err := first.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := second.Acquire(); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := second.Acquire(); err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
}
