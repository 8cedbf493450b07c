package resolve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for yt-dlp.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yt-dlp")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755)
	require.NoError(t, err)
	return path
}

func TestYtDlpArgs(t *testing.T) {
	y := NewYtDlp("", "", zerolog.Nop())
	assert.Equal(t, []string{
		"--no-playlist",
		"--quiet",
		"--simulate",
		"--print", `"%(webpage_url)s"`,
		"ytsearch:daft punk",
	}, y.Args("daft punk"))

	y = NewYtDlp("yt-dlp", "scsearch:", zerolog.Nop())
	assert.Equal(t, "scsearch:daft punk", y.Args("daft punk")[5])
}

func TestYtDlpSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("first output line is the address", func(t *testing.T) {
		script := writeScript(t, `echo '"https://www.youtube.com/watch?v=abc"'; echo '"https://www.youtube.com/watch?v=def"'`)
		y := NewYtDlp(script, "", zerolog.Nop())

		got, err := y.Search(ctx, "anything")
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc", got)
	})

	t.Run("query is passed with the search prefix", func(t *testing.T) {
		script := writeScript(t, `for last; do :; done; echo "https://x/$last"`)
		y := NewYtDlp(script, "", zerolog.Nop())

		got, err := y.Search(ctx, "cat")
		require.NoError(t, err)
		assert.Equal(t, "https://x/ytsearch:cat", got)
	})

	t.Run("failing tool reports stderr as diagnostic", func(t *testing.T) {
		script := writeScript(t, `echo "ERROR: no network" >&2; exit 1`)
		y := NewYtDlp(script, "", zerolog.Nop())

		_, err := y.Search(ctx, "cat")
		var re *ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "ERROR: no network", re.Diagnostic)
	})

	t.Run("silent failure reports exit status", func(t *testing.T) {
		script := writeScript(t, `exit 3`)
		y := NewYtDlp(script, "", zerolog.Nop())

		_, err := y.Search(ctx, "cat")
		var re *ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Contains(t, re.Diagnostic, "status 3")
	})

	t.Run("empty output is a resolution error", func(t *testing.T) {
		script := writeScript(t, `exit 0`)
		y := NewYtDlp(script, "", zerolog.Nop())

		_, err := y.Search(ctx, "cat")
		var re *ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "search returned no result", re.Diagnostic)
	})

	t.Run("missing tool is a resolution error", func(t *testing.T) {
		y := NewYtDlp(filepath.Join(t.TempDir(), "does-not-exist"), "", zerolog.Nop())

		_, err := y.Search(ctx, "cat")
		var re *ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Contains(t, re.Diagnostic, "unable to run")
	})
}
