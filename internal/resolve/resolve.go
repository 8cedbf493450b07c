// Package resolve turns user input into playable media addresses.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ResolutionError indicates the external search tool failed or returned
// nothing usable for a query.
type ResolutionError struct {
	Query      string // the query that could not be resolved
	Diagnostic string // text reported by the search tool
}

func (e *ResolutionError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("could not resolve %q", e.Query)
	}
	return fmt.Sprintf("could not resolve %q: %s", e.Query, e.Diagnostic)
}

// IsAddress reports whether s is a direct media address.
// Only the http:// and https:// prefixes are recognized; anything else,
// including local file paths, is a search query.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Searcher maps a free-text query to a media address.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Resolver classifies input and resolves queries through a Searcher.
type Resolver struct {
	searcher Searcher
	logger   zerolog.Logger
}

// NewResolver creates a Resolver backed by searcher.
func NewResolver(searcher Searcher, logger zerolog.Logger) *Resolver {
	return &Resolver{searcher: searcher, logger: logger}
}

// Resolve returns input unchanged when it is an address, otherwise the
// address found by the searcher. There are no retries.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	if IsAddress(input) {
		r.logger.Debug().Str("address", input).Msg("using address directly")
		return input, nil
	}

	r.logger.Info().Str("query", input).Msg("searching")
	out, err := r.searcher.Search(ctx, input)
	if err != nil {
		var re *ResolutionError
		if errors.As(err, &re) {
			return "", re
		}
		return "", &ResolutionError{Query: input, Diagnostic: err.Error()}
	}

	address := Clean(out)
	if address == "" {
		return "", &ResolutionError{Query: input, Diagnostic: "search returned no result"}
	}

	r.logger.Info().Str("query", input).Str("address", address).Msg("resolved query")
	return address, nil
}

// Clean removes line breaks and surrounding whitespace from search tool
// output, then one pair of enclosing quotes. Quotes inside the address are
// kept.
func Clean(s string) string {
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
