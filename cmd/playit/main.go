// Package main is the entry point for the playit CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacksmith/playit/internal/cli"
	"github.com/jacksmith/playit/internal/config"
	"github.com/jacksmith/playit/internal/logging"
	"github.com/jacksmith/playit/internal/notify"
	"github.com/jacksmith/playit/internal/ops"
	"github.com/jacksmith/playit/internal/player"
	"github.com/jacksmith/playit/internal/resolve"
	"github.com/jacksmith/playit/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(cli.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "playit",
	Short: "playit - play media from a URL or a search query",
	Long: `playit hands media to mpv. Give it a URL, or a search query that is
resolved through yt-dlp. Resolved queries are cached, so searching for the
same thing again starts playback right away.

Playlists are named lists of addresses stored as JSON files that can be
edited, shuffled and played as a whole.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	configFile   string
	verbose      bool
	showVideo    bool
	onlyVideo    bool
	volume       int
	loopPlayback bool
	mute         bool
	notification string
	noCache      bool
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("playit version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default <config dir>/playit/config.yaml)")
	pf.BoolVar(&verbose, "verbose", false, "log debug output to stderr")
	pf.BoolVarP(&showVideo, "show-video", "w", false, "open the video in a player window")
	pf.BoolVar(&onlyVideo, "only-video", false, "play the video without audio")
	pf.IntVarP(&volume, "volume", "v", 100, "playback volume (0-1000)")
	pf.BoolVar(&loopPlayback, "loop", false, "loop playback when it finishes")
	pf.BoolVarP(&mute, "mute", "m", false, "start muted")
	pf.StringVarP(&notification, "notification", "n", config.DefaultNotification, `notification shown on playback, {} is the address ("" disables)`)
	pf.BoolVar(&noCache, "no-cache", false, "do not read or write the query cache")
}

// env holds what the commands share for one invocation.
type env struct {
	cfg      *config.Config
	logger   zerolog.Logger
	resolver ops.Resolver
	spawner  ops.Spawner
	notifier ops.Notifier
	stdout   io.Writer
	stderr   io.Writer
}

// app is set up before any command runs.
var app *env

// setup loads configuration and builds the collaborators.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return &cli.ValidationError{Field: "configuration", Message: err.Error()}
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level, Format: cfg.Logging.Format})

	searcher := resolve.NewYtDlp(cfg.Resolver.Command, cfg.Resolver.SearchPrefix, logger)
	launcher := player.NewLauncher(cfg.Player.Command, cfg.Player.Args, logger)
	app = &env{
		cfg:      cfg,
		logger:   logger,
		resolver: resolve.NewResolver(searcher, logger),
		spawner:  launcher,
		notifier: notify.New(cfg.Notification.Command, logger),
		stdout:   cmd.OutOrStdout(),
		stderr:   cmd.ErrOrStderr(),
	}
	logger.Debug().
		Str("cache", cfg.Cache.Path).
		Str("playlists", cfg.Playlist.Dir).
		Str("player", launcher.Command()).
		Msg("configuration loaded")
	return nil
}

// storage opens the stores, with playlists under dir when it is set.
func (e *env) storage(dir string) *storage.Storage {
	if dir == "" {
		dir = e.cfg.Playlist.Dir
	}
	return storage.Open(e.cfg.Cache.Path, dir, e.resolver, e.logger)
}

// cache returns the query cache, or nil when caching is disabled.
func (e *env) cache() ops.Cache {
	if !e.cfg.Cache.Enabled {
		return nil
	}
	return storage.NewCache(e.cfg.Cache.Path, e.logger)
}

// playback builds the playback request for address.
func (e *env) playback(address string, extras []player.Flag) ops.Playback {
	p := e.cfg.Playback
	return ops.Playback{
		Address: address,
		Extras:  extras,
		Options: ops.PlaybackOptions{
			ShowVideo: p.ShowVideo,
			OnlyVideo: p.OnlyVideo,
			Volume:    p.Volume,
			Loop:      p.Loop,
			Mute:      p.Mute,
		},
		Notification: e.cfg.Notification.Template,
	}
}

// start spawns the player and prints its process id.
func (e *env) start(address string, extras []player.Flag) error {
	pid, err := ops.Play(e.spawner, e.notifier, e.playback(address, extras), e.logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s %s\n", cli.Green("playing"), address)
	fmt.Fprintf(e.stdout, "  %d\n", pid)
	return nil
}
