package notify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	assert.Equal(t, "Now playing: https://x/1", Render("Now playing: {}", "https://x/1"))
	assert.Equal(t, "static", Render("static", "https://x/1"))
	assert.Equal(t, "", Render("", "https://x/1"))
	assert.Equal(t, "https://x/1 / https://x/1", Render("{} / {}", "https://x/1"))
}

func TestNotify(t *testing.T) {
	t.Run("message is passed to the command", func(t *testing.T) {
		dir := t.TempDir()
		outFile := filepath.Join(dir, "out")
		script := filepath.Join(dir, "notify-send")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf '%s' \"$1\" > "+outFile+"\n"), 0755))

		New(script, zerolog.Nop()).Notify("Now playing: https://x/1")

		data, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Equal(t, "Now playing: https://x/1", string(data))
	})

	t.Run("failure is logged as a warning only", func(t *testing.T) {
		var buf bytes.Buffer
		n := New(filepath.Join(t.TempDir(), "missing"), zerolog.New(&buf))

		assert.NotPanics(t, func() { n.Notify("hello") })
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})

	t.Run("default command", func(t *testing.T) {
		n := New("", zerolog.Nop())
		assert.Equal(t, DefaultCommand, n.command)
	})
}
