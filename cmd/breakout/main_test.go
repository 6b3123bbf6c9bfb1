package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores flag defaults so tests do not leak into each other.
func resetFlags(t *testing.T) {
	t.Helper()
	flagConfig = ""
	flagDifficulty = ""
	flagAssets = ""
	flagEnv = filepath.Join(t.TempDir(), "none.env")
	flagLogFile = ""
	flagDebug = false
	flagStrict = false
}

func TestLoadConfigPresetAndAssets(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "easy"
	flagAssets = "https://example.com/breakout/"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Gameplay.Lives)
	assert.Equal(t, "https://example.com/breakout/", cfg.Assets.BaseURL)
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "nightmare"

	_, err := loadConfig()
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestLoadConfigCustomFile(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "breakout.yaml")
	require.NoError(t, os.WriteFile(flagConfig, []byte("gameplay:\n  lives: 9\n"), 0o600))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Gameplay.Lives)
}

func TestAssetsCommandEmbeddedPack(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"assets", "--strict", "--log-file", "", "--env", flagEnv})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	text := ansi.Strip(out.String())
	assert.Contains(t, text, "27_devil: 24/24 loaded")
	assert.Contains(t, text, "26_angel: 24/24 loaded")
	assert.Contains(t, text, "source: embedded")
}

func TestAssetsCommandStrictFailsOnMissing(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"assets", "--strict", "--assets", t.TempDir(), "--log-file", "", "--env", flagEnv})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "48 sprites could not be loaded")
	assert.Contains(t, ansi.Strip(out.String()), "27_devil: 0/24 loaded")
}

func TestRenderHowto(t *testing.T) {
	out, err := renderHowto(80)
	require.NoError(t, err)
	text := ansi.Strip(out)
	assert.Contains(t, text, "Breakout")
	assert.Contains(t, text, "Controls")
}
