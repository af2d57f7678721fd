package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfill/internal/config"
	"github.com/katalvlaran/pathfill/internal/logging"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logging.New(config.LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}

func TestNew_LevelGate(t *testing.T) {
	log, err := logging.New(config.LogConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathfill.log")
	log, err := logging.New(config.LogConfig{
		Level:      "info",
		Format:     "json",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("search finished", zap.Float64("probability", 0.25))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "search finished", entry["msg"])
	assert.Equal(t, 0.25, entry["probability"])
}

func TestNop(t *testing.T) {
	log := logging.Nop()
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}
