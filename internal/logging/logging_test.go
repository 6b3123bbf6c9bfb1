package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWritesRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	s, err := Open(path, false)
	require.NoError(t, err)
	_, err = uuid.Parse(s.RunID)
	require.NoError(t, err)

	s.Logger.Info("game started", "lives", 3)
	s.Logger.Debug("hidden at info level")
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "game started")
	assert.Contains(t, out, s.RunID)
	assert.Contains(t, out, "breakout")
	assert.NotContains(t, out, "hidden at info level")
}

func TestOpenDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	s, err := Open(path, true)
	require.NoError(t, err)
	s.Logger.Debug("sprite loaded")
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sprite loaded")
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	s, err := Open("", true)
	require.NoError(t, err)
	s.Logger.Info("nowhere")
	assert.NoError(t, s.Close())
}

func TestOpenFailsOnBadPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := Open(filepath.Join(file, "sub", "x.log"), false)
	assert.Error(t, err)
}
