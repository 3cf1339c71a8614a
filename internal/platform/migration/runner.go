// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for
// running database schema migrations.
//
// # Architecture
//
// The relational model (keys, cascades, join tables) is declared in the SQL
// files under data/migrations. The API applies pending migrations at startup
// and cmd/epicctl exposes the full up/down/version/force set.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Runner owns a golang-migrate instance bound to one database.
type Runner struct {
	migrator *migrate.Migrate
	logger   *slog.Logger
}

// NewRunner opens the migrations directory and the target database.
//
// # Parameters
//   - dsn: A libpq-compatible DSN or postgres:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func NewRunner(dsn, migrationsPath string, logger *slog.Logger) (*Runner, error) {
	migrator, err := migrate.New("file://"+migrationsPath, DatabaseURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}

	migrator.Log = &migrateLogger{logger: logger}

	return &Runner{migrator: migrator, logger: logger}, nil
}

// Close releases the source and database handles.
func (runner *Runner) Close() {
	sourceError, dbError := runner.migrator.Close()
	if sourceError != nil {
		runner.logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		runner.logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

// Version returns the applied version; zero means no migration ran yet.
func (runner *Runner) Version() (uint, bool, error) {
	version, dirty, err := runner.migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return version, dirty, nil
}

// Up applies all pending migrations. A dirty database is refused.
func (runner *Runner) Up() error {
	currentVersion, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	runner.logger.Info("migration_started", slog.Int("current_version", int(currentVersion)))

	if err := runner.migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := runner.Version()
	runner.logger.Info("migration_successful",
		slog.Int("from_version", int(currentVersion)),
		slog.Int("to_version", int(newVersion)),
	)

	return nil
}

// Down rolls back the given number of migrations.
func (runner *Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migration: steps must be positive, got %d", steps)
	}

	if err := runner.migrator.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: down failed: %w", err)
	}

	runner.logger.Info("migration_rolled_back", slog.Int("steps", steps))
	return nil
}

// Force sets the version without running migrations and clears the dirty flag.
func (runner *Runner) Force(version int) error {
	if err := runner.migrator.Force(version); err != nil {
		return fmt.Errorf("migration: force failed: %w", err)
	}

	runner.logger.Warn("migration_forced", slog.Int("version", version))
	return nil
}

// RunUp applies all pending migrations in one call.
func RunUp(dsn, migrationsPath string, logger *slog.Logger) error {
	runner, err := NewRunner(dsn, migrationsPath, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	return runner.Up()
}

// DatabaseURL rewrites postgres:// and postgresql:// URLs to the pgx5://
// scheme required by golang-migrate/v4. Other strings pass through.
func DatabaseURL(dsn string) string {
	const pgx5Prefix = "pgx5://"

	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return pgx5Prefix + rest
		}
	}

	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
