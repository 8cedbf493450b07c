package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is on when stdout is a terminal; commands may override it.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled overrides terminal detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green marks success.
func Green(s string) string { return paint(colorGreen, s) }

// Red marks failures.
func Red(s string) string { return paint(colorRed, s) }

// Yellow marks warnings.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray marks secondary details such as paths and indexes.
func Gray(s string) string { return paint(colorGray, s) }

// Warn writes a yellow "warning: " line to w.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Yellow("warning: ")+fmt.Sprintf(format, args...))
}

// Table aligns rows into columns separated by two spaces.
type Table struct {
	rows      [][]string
	widths    []int
	maxWidths map[int]int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int)}
}

// SetMaxWidth truncates column col to maxWidth visible characters.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.widths) < len(cols) {
		t.widths = append(t.widths, 0)
	}
	for i, col := range cols {
		if limit, ok := t.maxWidths[i]; ok {
			col = Truncate(col, limit)
			cols[i] = col
		}
		if w := visibleWidth(col); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w. The last column is not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			if i == len(row)-1 {
				parts[i] = col
				continue
			}
			parts[i] = col + strings.Repeat(" ", t.widths[i]-visibleWidth(col))
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate shortens s to at most maxWidth visible characters, ending it with
// "..." when there is room. Escape sequences are kept and a reset is appended
// after a cut colored string.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, tail := maxWidth, ""
	if maxWidth >= len(ellipsis) {
		limit, tail = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, colored := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, colored = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
	}
	b.WriteString(tail)
	if colored {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth counts the runes of s outside ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}
