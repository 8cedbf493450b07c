package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the platform directories at a temp dir so no real user
// config is read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func playbackFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("show-video", false, "")
	fs.Bool("only-video", false, "")
	fs.Int("volume", 100, "")
	fs.Bool("loop", false, "")
	fs.Bool("mute", false, "")
	fs.String("notification", DefaultNotification, "")
	fs.Bool("no-cache", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "mpv", cfg.Player.Command)
	assert.Equal(t, "yt-dlp", cfg.Resolver.Command)
	assert.Equal(t, "ytsearch:", cfg.Resolver.SearchPrefix)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(dir, "cache", "playit"), cfg.Cache.Path)
	assert.Equal(t, filepath.Join(dir, "config", "playit"), cfg.Playlist.Dir)
	assert.Equal(t, 100, cfg.Playback.Volume)
	assert.False(t, cfg.Playback.ShowVideo)
	assert.Equal(t, DefaultNotification, cfg.Notification.Template)
	assert.Equal(t, "notify-send", cfg.Notification.Command)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("default location is read", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "config", "playit", "config.yaml"), `
player:
  command: vlc
  args: ["--intf", "dummy"]
playback:
  volume: 60
  loop: true
`)

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "vlc", cfg.Player.Command)
		assert.Equal(t, []string{"--intf", "dummy"}, cfg.Player.Args)
		assert.Equal(t, 60, cfg.Playback.Volume)
		assert.True(t, cfg.Playback.Loop)
		assert.Equal(t, "yt-dlp", cfg.Resolver.Command) // default
	})

	t.Run("explicit file is read", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "custom.yaml")
		writeConfig(t, path, `
cache:
  path: ~/my-cache.json
playlist:
  dir: /srv/playlists
`)

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "my-cache.json"), cfg.Cache.Path)
		assert.Equal(t, "/srv/playlists", cfg.Playlist.Dir)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		dir := isolate(t)
		_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "config", "playit", "config.yaml"), "player: [unclosed")

		_, err := Load("", nil)
		require.Error(t, err)
	})
}

func TestLoadPrecedence(t *testing.T) {
	t.Run("environment overrides the file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "config", "playit", "config.yaml"), "player:\n  command: vlc\n")
		t.Setenv("PLAYIT_PLAYER_COMMAND", "celluloid")
		t.Setenv("PLAYIT_PLAYBACK_VOLUME", "40")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "celluloid", cfg.Player.Command)
		assert.Equal(t, 40, cfg.Playback.Volume)
	})

	t.Run("changed flags override the environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("PLAYIT_PLAYBACK_VOLUME", "40")
		fs := playbackFlags()
		require.NoError(t, fs.Parse([]string{"--volume", "70", "--mute"}))

		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, 70, cfg.Playback.Volume)
		assert.True(t, cfg.Playback.Mute)
	})

	t.Run("unchanged flags do not override the file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "config", "playit", "config.yaml"), "playback:\n  volume: 55\n")
		fs := playbackFlags()
		require.NoError(t, fs.Parse(nil))

		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, 55, cfg.Playback.Volume)
	})

	t.Run("empty notification flag disables notifications", func(t *testing.T) {
		isolate(t)
		fs := playbackFlags()
		require.NoError(t, fs.Parse([]string{"--notification="}))

		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Notification.Template)
	})

	t.Run("no-cache disables the cache", func(t *testing.T) {
		isolate(t)
		fs := playbackFlags()
		require.NoError(t, fs.Parse([]string{"--no-cache"}))

		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.False(t, cfg.Cache.Enabled)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Playback.Volume = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Player.Command = " "
	assert.Error(t, cfg.Validate())
}
