package testsupport

import (
	"context"
	"testing"

	"krk/internal/config"
	"krk/internal/prefs"
	"krk/internal/sessionstore"
)

// MustOpenStore opens a sessionstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *sessionstore.Store {
	t.Helper()

	store, err := sessionstore.Open(context.Background(), cfg.Paths.StateDir)
	if err != nil {
		t.Fatalf("sessionstore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// SaveSession stores s for user and fails the test on error.
func SaveSession(t testing.TB, store *sessionstore.Store, user string, s prefs.Session) {
	t.Helper()

	if err := store.Save(context.Background(), user, s); err != nil {
		t.Fatalf("save session for %s: %v", user, err)
	}
}
