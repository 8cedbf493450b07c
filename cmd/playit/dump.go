package main

import (
	"github.com/jacksmith/playit/internal/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export the cache and all playlists as YAML",
	Long: `Export the query cache and every playlist as YAML.

This is a one-way export for viewing or backups - it cannot be re-imported.

Examples:
  playit dump > playit.yaml
  playit dump --prefix ~/music/playlists`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var dumpPrefix string

func init() {
	dumpCmd.Flags().StringVar(&dumpPrefix, "prefix", "", "directory holding the playlist files")
	rootCmd.AddCommand(dumpCmd)
}

type dumpDoc struct {
	Cache     []storage.CacheEntry `yaml:"cache"`
	Playlists []dumpPlaylist       `yaml:"playlists"`
}

type dumpPlaylist struct {
	Name  string   `yaml:"name"`
	Path  string   `yaml:"path"`
	Items []string `yaml:"items"`
}

func runDump(cmd *cobra.Command, args []string) error {
	s := app.storage(dumpPrefix)

	doc := dumpDoc{Cache: []storage.CacheEntry{}, Playlists: []dumpPlaylist{}}

	c := s.Cache()
	if err := c.Load(); err != nil {
		return err
	}
	doc.Cache = append(doc.Cache, c.Entries()...)

	names, err := s.ListPlaylists()
	if err != nil {
		return err
	}
	for _, name := range names {
		pl, err := s.LoadPlaylist(name)
		if err != nil {
			return err
		}
		doc.Playlists = append(doc.Playlists, dumpPlaylist{Name: name, Path: pl.Path(), Items: pl.Items()})
	}

	enc := yaml.NewEncoder(app.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
