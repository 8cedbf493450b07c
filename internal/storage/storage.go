// Package storage provides the on-disk query cache and playlist files.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// appDir is the directory name used under the platform config dir.
	appDir = "playit"
	// cacheFile is the cache file name under the platform cache dir.
	cacheFile = "playit"
	// playlistExt is the extension of playlist files.
	playlistExt = ".pl"
)

// DefaultCachePath returns <user cache dir>/playit.
func DefaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine cache directory: %w", err)
	}
	return filepath.Join(dir, cacheFile), nil
}

// DefaultPlaylistDir returns <user config dir>/playit.
func DefaultPlaylistDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration directory: %w", err)
	}
	return filepath.Join(dir, appDir), nil
}

// PlaylistPath returns the file path of playlist name under dir.
func PlaylistPath(dir, name string) string {
	return filepath.Join(dir, name+playlistExt)
}

// ValidateName checks that name maps to a single file inside a playlist
// directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &InvalidNameError{Name: name, Reason: "name is required"}
	case name == "." || name == "..":
		return &InvalidNameError{Name: name, Reason: "name cannot be a relative directory"}
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return &InvalidNameError{Name: name, Reason: "name cannot contain a path separator"}
	}
	return nil
}

// Storage gives access to the cache file and a playlist directory.
type Storage struct {
	cachePath   string
	playlistDir string
	resolver    Resolver
	logger      zerolog.Logger
}

// Open returns a Storage for the given cache file and playlist directory.
// Nothing is touched on disk until a store is loaded or written.
func Open(cachePath, playlistDir string, resolver Resolver, logger zerolog.Logger) *Storage {
	return &Storage{
		cachePath:   cachePath,
		playlistDir: playlistDir,
		resolver:    resolver,
		logger:      logger,
	}
}

// CachePath returns the cache file path.
func (s *Storage) CachePath() string {
	return s.cachePath
}

// PlaylistDir returns the playlist directory.
func (s *Storage) PlaylistDir() string {
	return s.playlistDir
}

// Cache returns a new, unloaded cache.
func (s *Storage) Cache() *Cache {
	return NewCache(s.cachePath, s.logger)
}

// Playlist returns a new, unread playlist named name.
func (s *Storage) Playlist(name string) (*Playlist, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return NewPlaylist(name, s.playlistDir, s.resolver, s.logger), nil
}

// LoadPlaylist returns playlist name with its file content read.
// Returns NotFoundError if the file does not exist.
func (s *Storage) LoadPlaylist(name string) (*Playlist, error) {
	p, err := s.Playlist(name)
	if err != nil {
		return nil, err
	}
	if !p.Exists() {
		return nil, &NotFoundError{Name: name}
	}
	if err := p.Read(); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPlaylists returns the names of all playlists, sorted.
// A missing playlist directory yields no names. Files whose names cannot be
// addressed as playlists are skipped.
func (s *Storage) ListPlaylists() ([]string, error) {
	entries, err := os.ReadDir(s.playlistDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &IOError{Op: "read", Path: s.playlistDir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, playlistExt) || strings.HasPrefix(name, ".") {
			continue
		}
		name = strings.TrimSuffix(name, playlistExt)
		if err := ValidateName(name); err != nil {
			s.logger.Warn().Err(err).Str("dir", s.playlistDir).Msg("skipping playlist file")
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// DeletePlaylist removes a playlist file.
func (s *Storage) DeletePlaylist(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	path := PlaylistPath(s.playlistDir, name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Name: name}
		}
		return &IOError{Op: "delete", Path: path, Err: err}
	}
	s.logger.Info().Str("playlist", name).Msg("playlist deleted")
	return nil
}
