package storage

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/rs/zerolog"
)

// CacheEntry is a single remembered resolution.
type CacheEntry struct {
	Query   string `yaml:"query"`
	Address string `yaml:"address"`
}

// Cache remembers which address a search query resolved to.
// Keys are raw queries, matched exactly and case-sensitively. Entries are
// never evicted.
type Cache struct {
	path   string
	items  map[string]string
	logger zerolog.Logger
}

// NewCache creates an empty cache backed by the file at path.
func NewCache(path string, logger zerolog.Logger) *Cache {
	return &Cache{
		path:   path,
		items:  make(map[string]string),
		logger: logger,
	}
}

// Path returns the backing file path.
func (c *Cache) Path() string {
	return c.path
}

// Load reads the cache file into memory.
// A missing file is created holding an empty mapping. If the content cannot
// be decoded a CorruptDataError is returned and the in-memory mapping stays
// empty. Failures are left to the caller to report.
func (c *Cache) Load() error {
	if _, err := os.Stat(c.path); errors.Is(err, fs.ErrNotExist) {
		if err := writeFile(c.path, []byte("{}")); err != nil {
			return err
		}
		c.logger.Info().Str("path", c.path).Msg("cache file created")
	}

	data, err := readFile(c.path)
	if err != nil {
		return err
	}

	items := make(map[string]string)
	if err := decodeJSON("cache", c.path, data, &items); err != nil {
		return err
	}
	if items == nil {
		items = make(map[string]string)
	}

	c.items = items
	c.logger.Debug().Str("path", c.path).Int("entries", len(items)).Msg("cache loaded")
	return nil
}

// Lookup returns the address remembered for query.
func (c *Cache) Lookup(query string) (string, bool) {
	address, ok := c.items[query]
	return address, ok
}

// Put remembers address for query, replacing any previous value.
// The change is held in memory until Flush.
func (c *Cache) Put(query, address string) {
	c.items[query] = address
	c.logger.Debug().Str("query", query).Str("address", address).Msg("added to cache")
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.items)
}

// Entries returns all entries sorted by query.
func (c *Cache) Entries() []CacheEntry {
	entries := make([]CacheEntry, 0, len(c.items))
	for q, a := range c.items {
		entries = append(entries, CacheEntry{Query: q, Address: a})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Query < entries[j].Query
	})
	return entries
}

// Flush writes the whole mapping to the backing file.
func (c *Cache) Flush() error {
	data, err := encodeJSON("cache", c.items)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode cache")
		return err
	}
	if err := writeFile(c.path, data); err != nil {
		c.logger.Error().Err(err).Str("path", c.path).Msg("failed to write cache file")
		return err
	}
	c.logger.Debug().Str("path", c.path).Msg("cache written")
	return nil
}
