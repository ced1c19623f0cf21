package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogFilePath(t *testing.T) {
	at := time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC)

	assert.Equal(t, filepath.Join("logs", "prod_2025-03-09_14-05-07.log"), LogFilePath("logs", "prod", at))
	assert.Equal(t, filepath.Join("logs", "default_2025-03-09_14-05-07.log"), LogFilePath("logs", "", at))
}

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, err := InitLogger("test", dir, false)
	require.NoError(t, err)

	logger.Debug("offers fetched", zap.Int("count", 3))
	_ = logger.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "test_")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(data, &line))
	assert.Equal(t, "offers fetched", line["msg"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, float64(3), line["count"])
	assert.Contains(t, line, "timestamp")
}
