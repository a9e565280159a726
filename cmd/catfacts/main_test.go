package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/catfacts/internal/view"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("CATFACTS_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestSnapshotDefaultsToOverview(t *testing.T) {
	out, err := runCLI(t, "snapshot")
	require.NoError(t, err)
	require.Contains(t, out, "Cat Overview")
	require.Contains(t, out, "Cat 1 of 3")
	require.Contains(t, out, "rotating every 5s")
}

func TestSnapshotBreeds(t *testing.T) {
	out, err := runCLI(t, "snapshot", "--tab", "breeds", "--width", "100")
	require.NoError(t, err)
	require.Equal(t, 18, strings.Count(out, view.StarGlyph))
	require.Contains(t, out, "Popular Cat Breeds")
}

func TestSnapshotImageAndInterval(t *testing.T) {
	out, err := runCLI(t, "snapshot", "--tab", "care", "--image", "3", "--interval", "2s")
	require.NoError(t, err)
	require.Contains(t, out, "Cat 3 of 3")
	require.Contains(t, out, "rotating every 2s")
	require.Contains(t, out, "Schedule regular vet check-ups")
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	_, err := runCLI(t, "snapshot", "--tab", "kittens")
	require.ErrorContains(t, err, "unknown tab")

	_, err = runCLI(t, "snapshot", "--image", "4")
	require.ErrorContains(t, err, "out of range")

	_, err = runCLI(t, "snapshot", "--interval", "0s")
	require.Error(t, err)
}
