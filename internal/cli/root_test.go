package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/netgraph/internal/config"
)

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{
		"interval", "history", "stats", "no-stats",
		"auto-scale", "no-auto-scale", "dark", "light",
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))

	assert.Equal(t, "i", rootCmd.Flags().Lookup("interval").Shorthand)
	assert.Equal(t, "H", rootCmd.Flags().Lookup("history").Shorthand)
}

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, "dark", resolveTheme("dark").Name)
	assert.Equal(t, "light", resolveTheme("light").Name)
	// "auto" detects from the terminal; either palette is acceptable.
	name := resolveTheme("auto").Name
	assert.Contains(t, []string{"dark", "light"}, name)
}

func TestSubcommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "init")
}

func TestResolveOptionsFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("interval: 2\nhistory: 30\ntheme: light\n"), 0644))

	configFlag = cfgPath
	require.NoError(t, rootCmd.Flags().Set("interval", "0.5"))
	t.Cleanup(func() {
		configFlag = ""
		rootCmd.Flags().Lookup("interval").Changed = false
		intervalFlag = 1.0
	})

	opts, err := resolveOptions(rootCmd)
	require.NoError(t, err)

	// Explicit flag beats the file; untouched flags keep the file's values.
	assert.Equal(t, 500*time.Millisecond, opts.Interval)
	assert.Equal(t, 30, opts.HistorySize)
	assert.Equal(t, "light", opts.Theme.Name)
}

func TestResolveOptionsRejectsConflictingPalettes(t *testing.T) {
	darkFlag, lightFlag = true, true
	t.Cleanup(func() { darkFlag, lightFlag = false, false })

	_, err := resolveOptions(rootCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dark and --light")
}

func TestInitConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, initConfig(path, false))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInitConfigForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history: 5\n"), 0644))

	require.NoError(t, initConfig(path, true))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.History)
}
