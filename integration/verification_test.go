//go:build basic

// Package integration contains integration tests for venuerank.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSQLiteEndToEnd loads fixtures into a throwaway SQLite store, classifies,
// and verifies the stored codes against what the fixtures imply: a 12/120
// two-year rank is within the top 15 percent (M21) and a first-category
// regional listing earns M51.
func TestSQLiteEndToEnd(t *testing.T) {
	// Keep the default SQLite database under a throwaway home directory
	home := t.TempDir()
	env := append(os.Environ(), "HOME="+home)

	fixtureDir := t.TempDir()
	venuesPath := writeFixtureCSV(t, fixtureDir, "venues.csv", venueFixture)
	indicatorsPath := writeFixtureCSV(t, fixtureDir, "indicators.csv", indicatorFixture)

	out, err := runWithEnv(t, env, "load", "venues", venuesPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Loaded 2 venues")

	out, err = runWithEnv(t, env, "load", "indicators", indicatorsPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Loaded 3 indicators")

	// WOS run picks up the ranked journal
	out, err = runWithEnv(t, env, "classify", "--year", "2024")
	require.NoError(t, err, out)
	assert.Contains(t, out, "M21")

	// Regional run picks up the first-category listing
	out, err = runWithEnv(t, env, "classify", "--year", "2024", "--source", "regional")
	require.NoError(t, err, out)
	assert.Contains(t, out, "M51")

	// Both results are visible in the stored listing
	out, err = runWithEnv(t, env, "classifications", "list", "--year", "2024")
	require.NoError(t, err, out)
	assert.Contains(t, out, "M21")
	assert.Contains(t, out, "M51")

	// Filtering by code narrows the listing
	out, err = runWithEnv(t, env, "classifications", "list", "--year", "2024", "--code", "M51")
	require.NoError(t, err, out)
	assert.Contains(t, out, "M51")
	assert.NotContains(t, out, "M21")
}

// TestVersionAndHelp sanity-checks the binary without touching any store.
func TestVersionAndHelp(t *testing.T) {
	home := t.TempDir()
	env := append(os.Environ(), "HOME="+home)

	out, err := runWithEnv(t, env, "version")
	require.NoError(t, err, out)
	assert.Contains(t, out, "venuerank CLI")

	out, err = runWithEnv(t, env, "--help")
	require.NoError(t, err, out)
	assert.Contains(t, out, "classify")
	assert.Contains(t, out, "score")
}

// runWithEnv runs the shared binary with an explicit environment and returns
// its combined output.
func runWithEnv(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()
	binaryPath := getVenuerankBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../"
	cmd.Env = env
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return strings.TrimSpace(buf.String()), err
}
