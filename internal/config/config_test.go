package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("CATFACTS_CONFIG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 5*time.Second, cfg.Carousel.Interval)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[carousel]
interval = "2s"

[ui]
animations = false

[log]
file = "/tmp/catfacts.log"
level = "DEBUG"
`), 0o644))
	t.Setenv("CATFACTS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Carousel.Interval)
	require.False(t, cfg.UI.Animations)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, "/tmp/catfacts.log", cfg.Log.File)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromUserConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "catfacts")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"),
		[]byte("[carousel]\ninterval = \"750ms\"\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 750*time.Millisecond, cfg.Carousel.Interval)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel]\ninterval = \"2s\"\n"), 0o644))
	t.Setenv("CATFACTS_CONFIG", path)
	t.Setenv("CATFACTS_CAROUSEL_INTERVAL", "9s")
	t.Setenv("CATFACTS_UI_MOUSE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9*time.Second, cfg.Carousel.Interval)
	require.False(t, cfg.UI.Mouse)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolate(t)

	t.Setenv("CATFACTS_CAROUSEL_INTERVAL", "0s")
	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidInterval)

	t.Setenv("CATFACTS_CAROUSEL_INTERVAL", "5s")
	t.Setenv("CATFACTS_LOG_LEVEL", "chatty")
	_, err = Load()
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel\ninterval = "), 0o644))
	t.Setenv("CATFACTS_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}
