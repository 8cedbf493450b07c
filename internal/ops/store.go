package ops

import (
	"context"

	"github.com/jacksmith/playit/internal/player"
)

// Resolver turns a query or address into a playable address.
// The concrete implementation is resolve.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, input string) (string, error)
}

// Cache defines the query cache operations the resolution protocol needs.
// The concrete implementation is storage.Cache.
type Cache interface {
	Load() error
	Lookup(query string) (string, bool)
	Put(query, address string)
	Flush() error
}

// Playlist defines the playlist operations an edit session needs.
// The concrete implementation is storage.Playlist.
type Playlist interface {
	Name() string
	Items() []string
	Exists() bool
	Read() error
	Add(ctx context.Context, query string) (string, error)
	Remove(address string) bool
	Shuffle()
	Replace(items []string)
	Write() error
}

// Spawner starts the media player. The concrete implementation is
// player.Launcher.
type Spawner interface {
	Spawn(address string, flags []player.Flag) (int, error)
}

// Notifier shows a best-effort notification.
type Notifier interface {
	Notify(message string)
}
