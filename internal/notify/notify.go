// Package notify sends best-effort desktop notifications.
package notify

import (
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultCommand is the notification tool used when none is configured.
// It comes with libnotify.
const DefaultCommand = "notify-send"

// Notifier runs a notification command with the message as its argument.
// Failures are logged and never returned.
type Notifier struct {
	command string
	logger  zerolog.Logger
}

// New creates a Notifier. An empty command uses DefaultCommand.
func New(command string, logger zerolog.Logger) *Notifier {
	if command == "" {
		command = DefaultCommand
	}
	return &Notifier{command: command, logger: logger}
}

// Notify shows message and waits for the notification tool to finish.
func (n *Notifier) Notify(message string) {
	out, err := exec.Command(n.command, message).CombinedOutput()
	if err != nil {
		n.logger.Warn().
			Err(err).
			Str("command", n.command).
			Str("output", strings.TrimSpace(string(out))).
			Msg("the notification couldn't be shown, playback continues")
		return
	}
	n.logger.Debug().Msg("notification displayed")
}

// Render fills the {} placeholders in template with address.
// An empty template renders to an empty message.
func Render(template, address string) string {
	return strings.ReplaceAll(template, "{}", address)
}
