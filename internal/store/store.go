// Package store provides optional run/map persistence for the navigation
// core, grounded on the teacher's internal/db package (modernc.org/sqlite +
// golang-migrate). It is additive: the particle filter, planner, and
// latency compensator stay in-memory and store-agnostic. Store is wired in
// by cmd/navcore to record ticks for offline debugging and to let a
// previously loaded map be replayed without re-parsing its text file.
package store

import (
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a sqlite-backed database handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path, applies
// the essential pragmas the teacher's db.go uses for a single-writer
// embedded workload, and runs pending migrations to the latest version.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	return s, nil
}

// applyPragmas mirrors the teacher's db.go: WAL mode for concurrent
// readers, a busy timeout so a brief writer contention doesn't surface as
// "database is locked", and an in-memory temp store.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
