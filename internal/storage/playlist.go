package storage

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
)

// Resolver turns a query or address into a playable address.
type Resolver interface {
	Resolve(ctx context.Context, input string) (string, error)
}

// Playlist is a named, ordered sequence of addresses backed by one file.
// Duplicates are allowed and order is preserved across Read and Write.
type Playlist struct {
	name     string
	path     string
	items    []string
	resolver Resolver
	logger   zerolog.Logger

	// shuffle permutes n elements; replaced in tests.
	shuffle func(n int, swap func(i, j int))
}

// NewPlaylist creates an empty in-memory playlist stored at <dir>/<name>.pl.
// Nothing is read until Read is called.
func NewPlaylist(name, dir string, resolver Resolver, logger zerolog.Logger) *Playlist {
	return &Playlist{
		name:     name,
		path:     PlaylistPath(dir, name),
		items:    []string{},
		resolver: resolver,
		logger:   logger.With().Str("playlist", name).Logger(),
		shuffle:  rand.Shuffle,
	}
}

// Name returns the playlist name.
func (p *Playlist) Name() string {
	return p.name
}

// Path returns the backing file path.
func (p *Playlist) Path() string {
	return p.path
}

// Items returns a copy of the current sequence.
func (p *Playlist) Items() []string {
	return append([]string(nil), p.items...)
}

// Len returns the number of items.
func (p *Playlist) Len() int {
	return len(p.items)
}

// Exists reports whether the backing file exists.
// Callers check this before Read; a missing file means a new playlist.
func (p *Playlist) Exists() bool {
	return fileExists(p.path)
}

// Read replaces the in-memory sequence with the file content.
// A missing file is an IOError. On any failure the current items are kept.
func (p *Playlist) Read() error {
	data, err := readFile(p.path)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to read playlist file")
		return err
	}

	var items []string
	if err := DecodePlaylist(p.path, data, &items); err != nil {
		p.logger.Error().Err(err).Msg("failed to parse playlist file")
		return err
	}

	p.items = items
	p.logger.Debug().Str("path", p.path).Int("items", len(items)).Msg("playlist loaded")
	return nil
}

// DecodePlaylist decodes a JSON array of addresses into items.
func DecodePlaylist(path string, data []byte, items *[]string) error {
	var decoded []string
	if err := decodeJSON("playlist", path, data, &decoded); err != nil {
		return err
	}
	if decoded == nil {
		decoded = []string{}
	}
	*items = decoded
	return nil
}

// EncodePlaylist renders items in the playlist file format.
func EncodePlaylist(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return encodeJSON("playlist", items)
}

// Add resolves query and appends the address to the end of the sequence.
// On resolution failure the sequence is unchanged and the error is returned
// for the caller to report.
func (p *Playlist) Add(ctx context.Context, query string) (string, error) {
	address, err := p.resolver.Resolve(ctx, query)
	if err != nil {
		p.logger.Warn().Err(err).Str("query", query).Msg("search did not return a valid result")
		return "", err
	}

	p.items = append(p.items, address)
	p.logger.Info().Str("address", address).Msg("added to playlist")
	return address, nil
}

// Remove deletes the first item equal to address.
// It reports whether an item was removed.
func (p *Playlist) Remove(address string) bool {
	for i, item := range p.items {
		if item == address {
			p.items = append(p.items[:i], p.items[i+1:]...)
			p.logger.Info().Str("address", address).Msg("removed from playlist")
			return true
		}
	}
	p.logger.Warn().Str("address", address).Msg("not found in playlist, nothing to remove")
	return false
}

// Shuffle puts the items in a uniformly random order.
// Only memory is affected until Write.
func (p *Playlist) Shuffle() {
	p.shuffle(len(p.items), func(i, j int) {
		p.items[i], p.items[j] = p.items[j], p.items[i]
	})
	p.logger.Info().Msg("playlist shuffled")
}

// Replace sets the sequence to items.
func (p *Playlist) Replace(items []string) {
	p.items = append([]string{}, items...)
}

// Write replaces the backing file with the current sequence.
func (p *Playlist) Write() error {
	data, err := EncodePlaylist(p.items)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to encode playlist")
		return err
	}
	if err := writeFile(p.path, data); err != nil {
		p.logger.Error().Err(err).Msg("failed to write playlist file")
		return err
	}
	p.logger.Debug().Str("path", p.path).Int("items", len(p.items)).Msg("playlist written")
	return nil
}
