package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json format writes structured entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "info", Format: "json", Output: &buf})

		logger.Info().Str("path", "/tmp/playit").Msg("cache loaded")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "cache loaded", entry["message"])
		assert.Equal(t, "/tmp/playit", entry["path"])
	})

	t.Run("level filters lower entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "warn", Format: "json", Output: &buf})

		logger.Info().Msg("hidden")
		assert.Empty(t, buf.String())

		logger.Warn().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "debug", Format: "text", Output: &buf})

		logger.Debug().Msg("spawning player")
		assert.Contains(t, buf.String(), "spawning player")
		assert.Contains(t, buf.String(), "DBG")
	})
}
