package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationStatus describes the schema version recorded by golang-migrate
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Applied is false when no migration has ever run
	Applied bool
}

// newMigrator binds golang-migrate to the open connection. The returned
// instance must not be closed: that would close the shared *sql.DB.
func (db *DB) newMigrator(log *slog.Logger) (*migrate.Migrate, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+db.driver)
	if err != nil {
		return nil, fmt.Errorf("loading %s migrations: %w", db.driver, err)
	}

	var (
		driver database.Driver
		name   string
	)
	switch db.driver {
	case DriverSQLite:
		driver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
		name = "sqlite3"
	case DriverPostgres:
		driver, err = pgxmigrate.WithInstance(sqlDB, &pgxmigrate.Config{})
		name = "pgx5"
	default:
		err = fmt.Errorf("unsupported database driver: %q", db.driver)
	}
	if err != nil {
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}
	if log != nil {
		m.Log = &migrateLogger{logger: log}
	}
	return m, nil
}

// MigrateUp applies every pending migration
func (db *DB) MigrateUp(log *slog.Logger) error {
	m, err := db.newMigrator(log)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			if log != nil {
				log.Info("migrations already up to date")
			}
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}

	if log != nil {
		version, _, _ := m.Version()
		log.Info("migrations applied", slog.Uint64("version", uint64(version)))
	}
	return nil
}

// MigrateDown rolls back the given number of migrations, or all of them when steps <= 0
func (db *DB) MigrateDown(log *slog.Logger, steps int) error {
	m, err := db.newMigrator(log)
	if err != nil {
		return err
	}

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// MigrationStatus reports the current schema version
func (db *DB) MigrationStatus() (MigrationStatus, error) {
	m, err := db.newMigrator(nil)
	if err != nil {
		return MigrationStatus{}, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("reading migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}

// migrateLogger adapts golang-migrate's logger interface to slog
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
