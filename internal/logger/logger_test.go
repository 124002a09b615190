package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerIncludesBoundAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "pretty", slog.LevelInfo).With("file", "food.json")

	log.Info("enriched", "entries", 3)

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "enriched")
	assert.Contains(t, out, "file")
	assert.Contains(t, out, "food.json")
	assert.Contains(t, out, "entries")
}

func TestPrettyHandlerGroupsOnlyLaterAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", slog.LevelInfo).
		With("file", "food.json").
		WithGroup("entry").
		With("id", "w-gimchi")

	log.Info("enriched", "lines", 2)

	out := buf.String()
	assert.Contains(t, out, "file\033[0m=food.json")
	assert.NotContains(t, out, "entry.file")
	assert.Contains(t, out, "entry.id")
	assert.Contains(t, out, "entry.lines")
}

func TestPrettyHandlerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WRN")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "json", slog.LevelDebug)

	log.Debug("converted", "count", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "converted", rec["msg"])
	assert.Equal(t, float64(2), rec["count"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
