// Package ops implements playit's operations on top of the stores and the
// external collaborators.
package ops

import (
	"context"

	"github.com/jacksmith/playit/internal/resolve"
	"github.com/rs/zerolog"
)

// Source records where a resolved address came from.
type Source string

const (
	SourceDirect   Source = "direct"   // input was already an address
	SourceCached   Source = "cached"   // found in the query cache
	SourceResolved Source = "resolved" // searched and stored in the cache
	SourceUncached Source = "uncached" // searched with the cache unavailable
)

// Resolution is the outcome of ResolveQuery.
type Resolution struct {
	Address string
	Source  Source
}

// ResolveQuery resolves input using the cache when possible.
//
// Addresses are returned as-is. Otherwise the cache is loaded; if loading
// fails, caching is skipped for this call and the resolver is used directly.
// A cache hit is returned without re-validation. On a miss the resolver runs
// and a successful result is stored and flushed before it is returned; a
// failed flush is logged and does not prevent playback. A nil cache disables
// caching.
func ResolveQuery(ctx context.Context, input string, cache Cache, resolver Resolver, logger zerolog.Logger) (Resolution, error) {
	if resolve.IsAddress(input) {
		logger.Info().Msg("using provided URL directly")
		return Resolution{Address: input, Source: SourceDirect}, nil
	}

	if cache == nil {
		address, err := resolver.Resolve(ctx, input)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Address: address, Source: SourceUncached}, nil
	}

	if err := cache.Load(); err != nil {
		logger.Warn().Err(err).Msg("an error occurred while reading the cache file, caching will not be used")
		address, err := resolver.Resolve(ctx, input)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Address: address, Source: SourceUncached}, nil
	}

	if address, ok := cache.Lookup(input); ok {
		logger.Info().Str("address", address).Msg("using cached URL")
		return Resolution{Address: address, Source: SourceCached}, nil
	}

	address, err := resolver.Resolve(ctx, input)
	if err != nil {
		return Resolution{}, err
	}

	cache.Put(input, address)
	if err := cache.Flush(); err != nil {
		logger.Warn().Err(err).Msg("unable to save the cache, continuing without it")
	}
	return Resolution{Address: address, Source: SourceResolved}, nil
}
