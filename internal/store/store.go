package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns the UserRepo backed by this store.
func (s *Store) Users() UserRepo { return &userRepo{db: s.db} }

// Attempts returns the AttemptRepo backed by this store.
func (s *Store) Attempts() AttemptRepo { return &attemptRepo{db: s.db} }

// Diagnostics returns the DiagnosticRepo backed by this store.
func (s *Store) Diagnostics() DiagnosticRepo { return &diagnosticRepo{db: s.db} }

// LLMLog returns the LLMLogRepo backed by this store.
func (s *Store) LLMLog() LLMLogRepo { return &llmLogRepo{db: s.db} }

// Analytics returns the AnalyticsRepo backed by this store.
func (s *Store) Analytics() AnalyticsRepo { return &analyticsRepo{db: s.db} }

// applyPragmas configures SQLite for a small single-node deployment.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. EDUTUTOR_DB environment variable
// 2. $XDG_DATA_HOME/edututor/edututor.db
// 3. ~/.local/share/edututor/edututor.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("EDUTUTOR_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "edututor", "edututor.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
