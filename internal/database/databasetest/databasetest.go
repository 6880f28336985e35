// Package databasetest opens migrated throwaway databases for tests.
package databasetest

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/killallgit/catalog-api/internal/database"
	"github.com/stretchr/testify/require"
)

// New returns a file-backed SQLite database under t.TempDir() with every
// migration applied. It is closed when the test ends.
func New(t testing.TB) *database.DB {
	t.Helper()

	db, err := database.Initialize(database.Options{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.MigrateUp(Logger()), "failed to migrate test database")

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Logger discards everything
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
