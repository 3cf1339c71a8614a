// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command epicctl runs schema maintenance against the epicdb database.
//
//	epicctl migrate up
//	epicctl migrate down --steps 1
//	epicctl migrate version
//	epicctl migrate force 1
//
// DATABASE_URL and MIGRATION_PATH are read from the environment (or .env)
// and can be overridden with --db and --migrations-dir.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("app", "epicctl"))

	if err := newRootCommand(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
