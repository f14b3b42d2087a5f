package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(AppConfig{Name: "cinemania", LogPath: dir})
	require.NoError(t, err)

	logger.Info("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"app":"cinemania"`)
}

func TestInitLogger_StdoutOnly(t *testing.T) {
	logger, err := InitLogger(AppConfig{Debug: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1)) // debug level
}
