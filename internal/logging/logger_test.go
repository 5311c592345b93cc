package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	checks := map[string]charmlog.Level{
		"debug": charmlog.DebugLevel,
		"DEBUG": charmlog.DebugLevel,
		"info":  charmlog.InfoLevel,
		"warn":  charmlog.WarnLevel,
		"error": charmlog.ErrorLevel,
		"":      charmlog.InfoLevel,
		"loud":  charmlog.InfoLevel,
	}
	for in, want := range checks {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", "step", "web")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "step=web")
}

func TestJSONWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelDebug, Output: &buf, JSON: true}).With("step", "web")

	log.Debug("resolved", "dependencies", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "resolved", entry["msg"])
	assert.Equal(t, "web", entry["step"])
	assert.EqualValues(t, 2, entry["dependencies"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("dropped")
	})
}
