// Package player launches the external media player.
package player

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

// DefaultCommand is the player used when none is configured.
const DefaultCommand = "mpv"

// SpawnError indicates the player process could not be started.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Launcher starts the configured player with an address and flags.
type Launcher struct {
	command string   // player executable
	args    []string // arguments always passed before the address
	logger  zerolog.Logger
}

// NewLauncher creates a Launcher. An empty command uses DefaultCommand.
func NewLauncher(command string, args []string, logger zerolog.Logger) *Launcher {
	if command == "" {
		command = DefaultCommand
	}
	return &Launcher{
		command: command,
		args:    append([]string(nil), args...),
		logger:  logger,
	}
}

// Command returns the player executable.
func (l *Launcher) Command() string {
	return l.command
}

// Args returns the full argument list for playing address with flags:
// configured arguments, then the address, then each flag in order.
func (l *Launcher) Args(address string, flags []Flag) []string {
	args := make([]string, 0, len(l.args)+1+len(flags))
	args = append(args, l.args...)
	args = append(args, address)
	for _, f := range flags {
		args = append(args, f.Arg())
	}
	return args
}

// Spawn starts the player without waiting for it to exit and returns its
// process id. On failure the pid is 0 and the error is a *SpawnError.
func (l *Launcher) Spawn(address string, flags []Flag) (int, error) {
	args := l.Args(address, flags)
	l.logger.Info().Str("command", l.command).Strs("args", args).Msg("spawning player")

	cmd := exec.Command(l.command, args...)
	if err := cmd.Start(); err != nil {
		serr := &SpawnError{Command: l.command, Err: err}
		l.logger.Error().Err(err).Str("command", l.command).Msg("an error occurred while spawning the player")
		return 0, serr
	}

	pid := cmd.Process.Pid
	// Reap the player if it exits before we do.
	go cmd.Wait()
	return pid, nil
}
