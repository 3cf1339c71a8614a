// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/platform/testutil"
)

type fakeRunner struct {
	calls   []string
	steps   int
	forced  int
	version uint
	dirty   bool
	closed  bool
}

func (runner *fakeRunner) Up() error { runner.calls = append(runner.calls, "up"); return nil }

func (runner *fakeRunner) Down(steps int) error {
	runner.calls = append(runner.calls, "down")
	runner.steps = steps
	return nil
}

func (runner *fakeRunner) Version() (uint, bool, error) { return runner.version, runner.dirty, nil }

func (runner *fakeRunner) Force(version int) error {
	runner.calls = append(runner.calls, "force")
	runner.forced = version
	return nil
}

func (runner *fakeRunner) Close() { runner.closed = true }

func execute(t *testing.T, runner *fakeRunner, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://epic@localhost/epicdb")
	t.Setenv("MIGRATION_PATH", "./data/migrations")

	var gotDSN string
	opts := &options{
		logger: testutil.Logger(),
		open: func(dsn, _ string, _ *slog.Logger) (migrator, error) {
			gotDSN = dsn
			return runner, nil
		},
	}

	var out bytes.Buffer
	root := newRootCommandWith(opts)
	root.SetOut(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), gotDSN, err
}

func TestMigrateUp(t *testing.T) {
	runner := &fakeRunner{}

	_, dsn, err := execute(t, runner, "migrate", "up")
	require.NoError(t, err)

	assert.Equal(t, []string{"up"}, runner.calls)
	assert.Equal(t, "postgres://epic@localhost/epicdb", dsn)
	assert.True(t, runner.closed)
}

func TestMigrateDown_Steps(t *testing.T) {
	runner := &fakeRunner{}

	_, _, err := execute(t, runner, "migrate", "down", "--steps", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, runner.steps)
}

func TestMigrateVersion(t *testing.T) {
	out, _, err := execute(t, &fakeRunner{version: 1, dirty: true}, "migrate", "version")
	require.NoError(t, err)

	assert.Equal(t, "1 (dirty)\n", out)
}

func TestMigrateForce(t *testing.T) {
	runner := &fakeRunner{}

	_, _, err := execute(t, runner, "migrate", "force", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, runner.forced)

	_, _, err = execute(t, &fakeRunner{}, "migrate", "force", "one")
	assert.Error(t, err)
}

func TestDBFlagOverridesEnvironment(t *testing.T) {
	_, dsn, err := execute(t, &fakeRunner{}, "--db", "postgres://other@db/epicdb", "migrate", "up")
	require.NoError(t, err)

	assert.Equal(t, "postgres://other@db/epicdb", dsn)
}
