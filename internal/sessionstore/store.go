package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"krk/internal/prefs"
)

const (
	databaseName = "sessions.db"
	lockName     = "krk.lock"
	defaultUser  = "default"
)

// ErrLocked is returned by Acquire when another process holds the lock.
var ErrLocked = errors.New("another krk chat session is already running")

// Record is a stored session.
type Record struct {
	User      string        `json:"user" yaml:"user"`
	Session   prefs.Session `json:"preferences" yaml:"preferences"`
	Turns     int           `json:"turns" yaml:"turns"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" yaml:"updated_at"`
}

// Store manages session persistence backed by SQLite.
type Store struct {
	db       *sql.DB
	path     string
	lockPath string
	lock     *flock.Flock
}

// Open initializes or connects to the session database in stateDir and
// applies migrations.
func Open(ctx context.Context, stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, databaseName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	lockPath := filepath.Join(stateDir, lockName)
	store := &Store{db: db, path: dbPath, lockPath: lockPath, lock: flock.New(lockPath)}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Acquire takes the writer lock for an interactive session.
func (s *Store) Acquire() error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (lock %s)", ErrLocked, s.lockPath)
	}
	return nil
}

// Release drops the writer lock if held.
func (s *Store) Release() error {
	if s == nil || s.lock == nil || !s.lock.Locked() {
		return nil
	}
	return s.lock.Unlock()
}

// Close releases the lock and closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	releaseErr := s.Release()
	closeErr := s.db.Close()
	return errors.Join(releaseErr, closeErr)
}

// Load returns the stored session for user. The boolean is false when the
// user has no stored session.
func (s *Store) Load(ctx context.Context, user string) (prefs.Session, bool, error) {
	rec, ok, err := s.Get(ctx, user)
	if err != nil || !ok {
		return prefs.Session{}, ok, err
	}
	return rec.Session, true, nil
}

// Get returns the full record for user.
func (s *Store) Get(ctx context.Context, user string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_name, actor_id, genre_id, language, date_from, date_to, turns, created_at, updated_at
         FROM sessions WHERE user_name = ?`, normalizeUser(user))
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("load session: %w", err)
	}
	return rec, true, nil
}

// Save upserts the session for user and counts the turn.
func (s *Store) Save(ctx context.Context, user string, session prefs.Session) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (user_name, actor_id, genre_id, language, date_from, date_to, turns, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
         ON CONFLICT(user_name) DO UPDATE SET
            actor_id = excluded.actor_id,
            genre_id = excluded.genre_id,
            language = excluded.language,
            date_from = excluded.date_from,
            date_to = excluded.date_to,
            turns = sessions.turns + 1,
            updated_at = excluded.updated_at`,
		normalizeUser(user),
		session.ActorID,
		session.GenreID,
		session.Language,
		session.DateFrom,
		session.DateTo,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes the stored session for user.
func (s *Store) Delete(ctx context.Context, user string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE user_name = ?", normalizeUser(user))
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// List returns every stored session, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_name, actor_id, genre_id, language, date_from, date_to, turns, created_at, updated_at
         FROM sessions ORDER BY updated_at DESC, user_name`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var created, updated string
	err := row.Scan(
		&rec.User,
		&rec.Session.ActorID,
		&rec.Session.GenreID,
		&rec.Session.Language,
		&rec.Session.DateFrom,
		&rec.Session.DateTo,
		&rec.Turns,
		&created,
		&updated,
	)
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return rec, nil
}

// normalizeUser folds names case-insensitively; a blank name maps to the
// shared default session.
func normalizeUser(user string) string {
	user = strings.ToLower(strings.TrimSpace(user))
	if user == "" {
		return defaultUser
	}
	return user
}
