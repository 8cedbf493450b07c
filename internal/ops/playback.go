package ops

import (
	"strconv"

	"github.com/jacksmith/playit/internal/notify"
	"github.com/jacksmith/playit/internal/player"
	"github.com/rs/zerolog"
)

// PlaybackOptions are the user's playback choices.
type PlaybackOptions struct {
	ShowVideo bool
	OnlyVideo bool
	Volume    int
	Loop      bool
	Mute      bool
}

// PlaybackFlags builds the player flags for opts.
func PlaybackFlags(opts PlaybackOptions) []player.Flag {
	var flags []player.Flag
	if !opts.ShowVideo && !opts.OnlyVideo {
		flags = append(flags, player.Bare("--no-video"))
	}
	if opts.OnlyVideo {
		flags = append(flags, player.Bare("--no-audio"))
	}
	flags = append(flags, player.Valued("--volume", strconv.Itoa(opts.Volume)))
	if opts.Mute {
		flags = append(flags, player.Bare("--mute"))
	}
	if opts.Loop {
		flags = append(flags, player.Bare("--loop"))
	}
	return flags
}

// Playback is a resolved request to start the player.
type Playback struct {
	Address      string
	Extras       []player.Flag // additional playlist items
	Options      PlaybackOptions
	Notification string // template; empty disables the notification
}

// Play starts the player for p and, once it is running, shows the
// notification. A spawn failure is returned and no notification is shown.
func Play(spawner Spawner, notifier Notifier, p Playback, logger zerolog.Logger) (int, error) {
	flags := append(append([]player.Flag{}, p.Extras...), PlaybackFlags(p.Options)...)

	pid, err := spawner.Spawn(p.Address, flags)
	if err != nil {
		return 0, err
	}
	logger.Info().Int("pid", pid).Str("address", p.Address).Msg("player started")

	if p.Notification != "" && notifier != nil {
		notifier.Notify(notify.Render(p.Notification, p.Address))
	}
	return pid, nil
}
