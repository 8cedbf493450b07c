package resolve

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultSearchCommand is the search tool used when none is configured.
	DefaultSearchCommand = "yt-dlp"
	// DefaultSearchPrefix selects yt-dlp's YouTube search extractor.
	DefaultSearchPrefix = "ytsearch:"
)

// YtDlp searches with yt-dlp in simulate mode and reads the page URL of the
// first hit from its standard output.
type YtDlp struct {
	command string
	prefix  string
	logger  zerolog.Logger
}

// NewYtDlp creates a YtDlp searcher. Empty command or prefix use defaults.
func NewYtDlp(command, prefix string, logger zerolog.Logger) *YtDlp {
	if command == "" {
		command = DefaultSearchCommand
	}
	if prefix == "" {
		prefix = DefaultSearchPrefix
	}
	return &YtDlp{command: command, prefix: prefix, logger: logger}
}

// Args returns the arguments passed to the search tool for query.
func (y *YtDlp) Args(query string) []string {
	return []string{
		"--no-playlist",
		"--quiet",
		"--simulate",
		"--print", `"%(webpage_url)s"`,
		y.prefix + query,
	}
}

// Search runs the search tool and returns the first non-empty output line.
func (y *YtDlp) Search(ctx context.Context, query string) (string, error) {
	args := y.Args(query)
	y.logger.Debug().Str("command", y.command).Strs("args", args).Msg("running search tool")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, y.command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				diag = "search tool exited with status " + strconv.Itoa(exitErr.ExitCode())
			} else {
				diag = "unable to run " + y.command + ": " + err.Error()
			}
		}
		return "", &ResolutionError{Query: query, Diagnostic: diag}
	}

	for _, line := range strings.Split(stdout.String(), "\n") {
		if address := Clean(line); address != "" {
			return address, nil
		}
	}

	diag := strings.TrimSpace(stderr.String())
	if diag == "" {
		diag = "search returned no result"
	}
	return "", &ResolutionError{Query: query, Diagnostic: diag}
}
