package main

import (
	"fmt"

	"github.com/jacksmith/playit/internal/cli"
	"github.com/jacksmith/playit/internal/search"
	"github.com/jacksmith/playit/internal/storage"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the query cache",
	Long: `Inspect the query cache that maps search queries to addresses.

Entries are never expired; edit or delete the file shown by "playit cache
path" to forget a stale result.`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached queries",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find cached queries matching a term",
	Long: `Find cached queries matching a term, best match first.

The term is matched fuzzily against the cached queries. No match is an
error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCacheSearch,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(app.stdout, app.cfg.Cache.Path)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheSearchCmd)
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}

func loadCache() (*storage.Cache, error) {
	c := storage.NewCache(app.cfg.Cache.Path, app.logger)
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

func runCacheList(cmd *cobra.Command, args []string) error {
	c, err := loadCache()
	if err != nil {
		return err
	}
	printEntries(c.Entries())
	return nil
}

func runCacheSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCache()
	if err != nil {
		return err
	}

	entries := c.Entries()
	queries := make([]string, len(entries))
	for i, e := range entries {
		queries[i] = e.Query
	}

	var matches []storage.CacheEntry
	for _, q := range search.Rank(args[0], queries) {
		address, _ := c.Lookup(q)
		matches = append(matches, storage.CacheEntry{Query: q, Address: address})
	}
	if len(matches) == 0 {
		return &cli.NotFoundError{Type: "cached query matching", ID: args[0]}
	}
	printEntries(matches)
	return nil
}

func printEntries(entries []storage.CacheEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(app.stdout, cli.Gray("no cached queries"))
		return
	}
	table := cli.NewTable()
	table.SetMaxWidth(0, 50)
	for _, e := range entries {
		table.AddRow(e.Query, cli.Gray(e.Address))
	}
	table.Render(app.stdout)
}
