package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Warn("careful")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "careful", record["msg"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_Invalid(t *testing.T) {
	var buf bytes.Buffer

	_, err := NewLogger(Config{Level: "loud", Format: "text"}, &buf)
	assert.ErrorContains(t, err, "invalid log level")

	_, err = NewLogger(Config{Level: "info", Format: "xml"}, &buf)
	assert.ErrorContains(t, err, "invalid log format")
}

func TestInitialize(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	require.NoError(t, Initialize(Config{Level: "debug", Format: "json"}))
	assert.Error(t, Initialize(Config{Level: "bogus"}))
}
