package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "schedlab-report.txt", cfg.ReportPath)
	assert.Equal(t, 10, cfg.GridWindow)
	assert.Empty(t, cfg.LogPath)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "schedlab")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "[report]\npath = \"/tmp/custom.txt\"\n\n[ui]\ngrid_window = 6\n\n[log]\npath = \"/tmp/schedlab.log\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.txt", cfg.ReportPath)
	assert.Equal(t, 6, cfg.GridWindow)
	assert.Equal(t, "/tmp/schedlab.log", cfg.LogPath)
}

func TestLoadFallsBackOnBadGridWindow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "schedlab")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ngrid_window = -3\n"), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GridWindow)
}

func TestWriteStarterRoundTrips(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, WriteStarter(path, false))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "schedlab-report.txt", cfg.ReportPath)
	assert.Equal(t, 10, cfg.GridWindow)
}

func TestWriteStarterRefusesToClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteStarter(path, false))
	err := WriteStarter(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.NoError(t, WriteStarter(path, true))
}
