// Package cli holds the pieces shared by playit's commands: error
// reporting, exit codes, colored output and the editor.
package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/playit/internal/ops"
	"github.com/jacksmith/playit/internal/player"
	"github.com/jacksmith/playit/internal/resolve"
	"github.com/jacksmith/playit/internal/storage"
)

// Exit statuses.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitValidation  = 2
	ExitResolution  = 3
	ExitCorruptData = 4
	ExitIO          = 5
	ExitEmpty       = 6
	ExitSpawn       = 7
)

// NotFoundError indicates a named item was not found.
type NotFoundError struct {
	Type string // what was looked up, e.g. "cached query matching"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Type, e.ID)
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string // the flag or argument that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		validation  *ValidationError
		invalidName *storage.InvalidNameError
		notFound    *NotFoundError
		missing     *storage.NotFoundError
		resolution  *resolve.ResolutionError
		corrupt     *storage.CorruptDataError
		ioErr       *storage.IOError
		serialize   *storage.SerializationError
		spawn       *player.SpawnError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &invalidName):
		return ExitValidation
	case errors.As(err, &notFound), errors.As(err, &missing):
		return ExitValidation
	case errors.As(err, &resolution):
		return ExitResolution
	case errors.As(err, &corrupt):
		return ExitCorruptData
	case errors.As(err, &ioErr), errors.As(err, &serialize):
		return ExitIO
	case errors.Is(err, ops.ErrEmptyPlaylist):
		return ExitEmpty
	case errors.As(err, &spawn):
		return ExitSpawn
	}
	return ExitError
}
