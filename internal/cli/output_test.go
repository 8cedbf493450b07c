package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
	assert.Equal(t, "\033[31mok\033[0m", Red("ok"))
	assert.Equal(t, "\033[33mok\033[0m", Yellow("ok"))
	assert.Equal(t, "\033[90mok\033[0m", Gray("ok"))
	assert.True(t, ColorEnabled())

	SetColorEnabled(false)
	assert.Equal(t, "ok", Green("ok"))
	assert.Equal(t, "ok", Gray("ok"))
	assert.False(t, ColorEnabled())
}

func TestWarn(t *testing.T) {
	SetColorEnabled(false)
	var buf bytes.Buffer
	Warn(&buf, "%q is not in playlist %q", "https://x/1", "mix")
	assert.Equal(t, "warning: \"https://x/1\" is not in playlist \"mix\"\n", buf.String())
}

func TestTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewTable().Render(&buf)
		assert.Equal(t, "", buf.String())
	})

	t.Run("aligns columns", func(t *testing.T) {
		table := NewTable()
		table.AddRow("1", "lofi beats", "https://y.t/1")
		table.AddRow("10", "rain", "https://y.t/22")

		var buf bytes.Buffer
		table.Render(&buf)
		expected := "1   lofi beats  https://y.t/1\n" +
			"10  rain        https://y.t/22\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("ignores color codes when aligning", func(t *testing.T) {
		SetColorEnabled(true)
		defer SetColorEnabled(false)

		table := NewTable()
		table.AddRow(Gray("1"), "a")
		table.AddRow("22", "b")

		var buf bytes.Buffer
		table.Render(&buf)
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Equal(t, Gray("1")+"   a", lines[0])
		assert.Equal(t, "22  b", lines[1])
	})

	t.Run("max width", func(t *testing.T) {
		table := NewTable()
		table.SetMaxWidth(0, 10)
		table.AddRow(strings.Repeat("q", 40), "https://y.t/1")

		var buf bytes.Buffer
		table.Render(&buf)
		assert.Equal(t, "qqqqqqq...  https://y.t/1\n", buf.String())
	})
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"only ellipsis", "hello world", 3, "..."},
		{"max 1", "hello", 1, "h"},
		{"max 0", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}

	t.Run("colored", func(t *testing.T) {
		SetColorEnabled(true)
		defer SetColorEnabled(false)

		got := Truncate(Green("hello world"), 8)
		assert.Equal(t, 8, visibleWidth(got))
		assert.Contains(t, got, "...")
		assert.True(t, strings.HasSuffix(got, colorReset))
	})
}
