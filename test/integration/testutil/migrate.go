//go:build integration

package testutil

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrateTestDB applies the project migrations from db/migrations to the
// test database. The migrate drivers are linked here so the rest of the
// package stays free of the blank imports.
func migrateTestDB(databaseURL string) error {
	sourceURL := fmt.Sprintf("file://%s/db/migrations", findProjectRoot())

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
