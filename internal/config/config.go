// Package config loads playit settings from a config file, the environment
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacksmith/playit/internal/notify"
	"github.com/jacksmith/playit/internal/player"
	"github.com/jacksmith/playit/internal/resolve"
	"github.com/jacksmith/playit/internal/storage"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PLAYIT_PLAYER_COMMAND.
const EnvPrefix = "PLAYIT"

// DefaultNotification is the notification shown when playback starts.
const DefaultNotification = "Now playing: {}"

// Config holds all application configuration.
type Config struct {
	Player       PlayerConfig       `mapstructure:"player"`
	Resolver     ResolverConfig     `mapstructure:"resolver"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Playlist     PlaylistConfig     `mapstructure:"playlist"`
	Playback     PlaybackConfig     `mapstructure:"playback"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// PlayerConfig holds media player configuration.
type PlayerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// ResolverConfig holds search tool configuration.
type ResolverConfig struct {
	Command      string `mapstructure:"command"`
	SearchPrefix string `mapstructure:"search_prefix"`
}

// CacheConfig holds query cache configuration.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // empty for <user cache dir>/playit
}

// PlaylistConfig holds playlist storage configuration.
type PlaylistConfig struct {
	Dir string `mapstructure:"dir"` // empty for <user config dir>/playit
}

// PlaybackConfig holds the default playback options.
type PlaybackConfig struct {
	ShowVideo bool `mapstructure:"show_video"`
	OnlyVideo bool `mapstructure:"only_video"`
	Volume    int  `mapstructure:"volume"`
	Loop      bool `mapstructure:"loop"`
	Mute      bool `mapstructure:"mute"`
}

// NotificationConfig holds desktop notification configuration.
type NotificationConfig struct {
	Template string `mapstructure:"template"` // empty disables notifications
	Command  string `mapstructure:"command"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			Command: player.DefaultCommand,
			Args:    []string{},
		},
		Resolver: ResolverConfig{
			Command:      resolve.DefaultSearchCommand,
			SearchPrefix: resolve.DefaultSearchPrefix,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Playback: PlaybackConfig{
			Volume: 100,
		},
		Notification: NotificationConfig{
			Template: DefaultNotification,
			Command:  notify.DefaultCommand,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// FlagKeys maps command-line flag names to the config keys they override.
var FlagKeys = map[string]string{
	"show-video":   "playback.show_video",
	"only-video":   "playback.only_video",
	"volume":       "playback.volume",
	"loop":         "playback.loop",
	"mute":         "playback.mute",
	"notification": "notification.template",
}

// DefaultConfigDir returns <user config dir>/playit.
func DefaultConfigDir() (string, error) {
	return storage.DefaultPlaylistDir()
}

// Load reads configuration with precedence flags > environment > config file
// > defaults. If file is empty, config.yaml in DefaultConfigDir is used when
// present. Flags that were not set on the command line do not override.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// Config file not found is OK, use defaults
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
			}
		}
		if noCache, err := flags.GetBool("no-cache"); err == nil && noCache {
			v.Set("cache.enabled", false)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables and bound
// flags are seen by Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("player.command", d.Player.Command)
	v.SetDefault("player.args", d.Player.Args)
	v.SetDefault("resolver.command", d.Resolver.Command)
	v.SetDefault("resolver.search_prefix", d.Resolver.SearchPrefix)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.path", d.Cache.Path)
	v.SetDefault("playlist.dir", d.Playlist.Dir)
	v.SetDefault("playback.show_video", d.Playback.ShowVideo)
	v.SetDefault("playback.only_video", d.Playback.OnlyVideo)
	v.SetDefault("playback.volume", d.Playback.Volume)
	v.SetDefault("playback.loop", d.Playback.Loop)
	v.SetDefault("playback.mute", d.Playback.Mute)
	v.SetDefault("notification.template", d.Notification.Template)
	v.SetDefault("notification.command", d.Notification.Command)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// resolvePaths fills in platform default locations and expands ~.
func (c *Config) resolvePaths() error {
	var err error
	if c.Cache.Path == "" {
		if c.Cache.Path, err = storage.DefaultCachePath(); err != nil {
			return err
		}
	}
	if c.Playlist.Dir == "" {
		if c.Playlist.Dir, err = storage.DefaultPlaylistDir(); err != nil {
			return err
		}
	}
	if c.Cache.Path, err = expandHome(c.Cache.Path); err != nil {
		return err
	}
	c.Playlist.Dir, err = expandHome(c.Playlist.Dir)
	return err
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Playback.Volume < 0 || c.Playback.Volume > 1000 {
		return fmt.Errorf("invalid volume %d: must be between 0 and 1000", c.Playback.Volume)
	}
	if strings.TrimSpace(c.Player.Command) == "" {
		return fmt.Errorf("player command cannot be empty")
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
