// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/epicdb/internal/platform/config"
	"github.com/taibuivan/epicdb/internal/platform/constants"
	"github.com/taibuivan/epicdb/internal/platform/migration"
)

// migrator is the subset of [*migration.Runner] the commands drive.
type migrator interface {
	Up() error
	Down(steps int) error
	Version() (uint, bool, error)
	Force(version int) error
	Close()
}

type options struct {
	databaseURL   string
	migrationsDir string
	logger        *slog.Logger

	// open is swapped in tests.
	open func(dsn, path string, logger *slog.Logger) (migrator, error)
}

func openRunner(dsn, path string, logger *slog.Logger) (migrator, error) {
	return migration.NewRunner(dsn, path, logger)
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	return newRootCommandWith(&options{logger: logger, open: openRunner})
}

func newRootCommandWith(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "epicctl",
		Short:         "Schema maintenance for the epicdb database",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			database, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			if opts.databaseURL == "" {
				opts.databaseURL = database.URL
			}
			if !cmd.Flags().Changed("migrations-dir") {
				opts.migrationsDir = database.MigrationPath
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.databaseURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
	root.PersistentFlags().StringVar(&opts.migrationsDir, "migrations-dir", "./data/migrations", "Directory holding the SQL migrations")

	root.AddCommand(newMigrateCommand(opts))
	return root
}

func newMigrateCommand(opts *options) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect schema migrations",
	}

	var steps int

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(opts, func(runner migrator) error {
				return runner.Up()
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(opts, func(runner migrator) error {
				return runner.Down(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(opts, func(runner migrator) error {
				current, dirty, err := runner.Version()
				if err != nil {
					return err
				}
				if dirty {
					fmt.Fprintf(cmd.OutOrStdout(), "%d (dirty)\n", current)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", current)
				return nil
			})
		},
	}

	force := &cobra.Command{
		Use:   "force VERSION",
		Short: "Set the schema version and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			return withRunner(opts, func(runner migrator) error {
				return runner.Force(target)
			})
		},
	}

	migrate.AddCommand(up, down, version, force)
	return migrate
}

func withRunner(opts *options, fn func(runner migrator) error) error {
	if opts.databaseURL == "" {
		return errors.New("database URL is required (set DATABASE_URL or --db)")
	}

	runner, err := opts.open(opts.databaseURL, opts.migrationsDir, opts.logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	return fn(runner)
}
