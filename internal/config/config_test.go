package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1.0, cfg.Interval)
	assert.Equal(t, 60, cfg.History)
	assert.True(t, cfg.Stats)
	assert.True(t, cfg.AutoScale)
	assert.Equal(t, "auto", cfg.Theme)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
interval: 0.5
history: 120
stats: false
auto_scale: false
theme: dark
`
	err := os.WriteFile(configPath, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Interval)
	assert.Equal(t, 120, cfg.History)
	assert.False(t, cfg.Stats)
	assert.False(t, cfg.AutoScale)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	err := os.WriteFile(configPath, []byte("history: 30\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.History)
	assert.Equal(t, 1.0, cfg.Interval)
	assert.True(t, cfg.Stats)
	assert.Equal(t, "auto", cfg.Theme)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("history: 30\ninterval: 2\n"), 0644))

	t.Setenv("NETGRAPH_HISTORY", "99")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 99, cfg.History)
	// Keys without an env override keep the file's values.
	assert.Equal(t, 2.0, cfg.Interval)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Config file not found")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"zero interval", "interval: 0\n", "interval must be positive"},
		{"negative history", "history: -5\n", "History size must be positive"},
		{"unknown theme", "theme: solarized\n", "Unknown theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadOrDefaultExplicitMissing(t *testing.T) {
	_, err := LoadOrDefault("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", ConfigFileName)

	cfg := &Config{
		Interval:  2.0,
		History:   90,
		Stats:     true,
		AutoScale: false,
		Theme:     "light",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := &Config{Interval: -1, History: 60, Theme: "auto"}
	err := cfg.Save(filepath.Join(t.TempDir(), "config.yaml"))
	assert.Error(t, err)
}
