package store

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// migrateUp applies every pending embedded migration, mirroring the
// teacher's internal/db/migrate.go newMigrate/MigrateUp pair.
func (s *Store) migrateUp() error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("sub-filesystem for embedded migrations: %w", err)
	}

	sourceDriver, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create iofs source driver: %w", err)
	}

	dbDriver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	// The returned *migrate.Migrate must not be Closed here: its sqlite
	// driver's Close() would close the shared *sql.DB, which Store owns
	// and closes itself via Store.Close.
	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}
