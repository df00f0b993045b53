package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Config{Level: "loud", Output: "discard"})
	assert.Error(t, err)
}

func TestNew_InvalidOutput(t *testing.T) {
	_, _, err := New(Config{Level: "info", Output: "printer"})
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, _, err = New(Config{Level: "info", Output: "file"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lock.log")
	logger, closer, err := New(Config{Level: "debug", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	sessionLogger := Component(logger, "session")
	sessionLogger.Debug().Int("remaining", 2).Msg("unlock failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.Contains(line, `"component":"session"`), line)
	assert.True(t, strings.Contains(line, `"remaining":2`), line)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock.log")
	logger, closer, err := New(Config{Level: "warn", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
