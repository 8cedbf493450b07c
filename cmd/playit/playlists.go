package main

import (
	"fmt"

	"github.com/jacksmith/playit/internal/cli"
	"github.com/jacksmith/playit/internal/search"
	"github.com/spf13/cobra"
)

var playlistsCmd = &cobra.Command{
	Use:   "playlists [filter]",
	Short: "List playlists",
	Long: `List playlists with their item count.

The optional filter is matched fuzzily against playlist names, best match
first.

Examples:
  playit playlists
  playit playlists chl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlaylists,
}

var playlistsPrefix string

func init() {
	playlistsCmd.Flags().StringVar(&playlistsPrefix, "prefix", "", "directory holding the playlist files")
	rootCmd.AddCommand(playlistsCmd)
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	s := app.storage(playlistsPrefix)
	names, err := s.ListPlaylists()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		names = search.Filter(args[0], names)
	}
	if len(names) == 0 {
		fmt.Fprintln(app.stdout, cli.Gray("no playlists"))
		return nil
	}

	table := cli.NewTable()
	for _, name := range names {
		count := cli.Red("unreadable")
		if pl, err := s.LoadPlaylist(name); err == nil {
			count = cli.Gray(fmt.Sprintf("%d items", pl.Len()))
		} else {
			app.logger.Warn().Err(err).Str("playlist", name).Msg("skipping item count")
		}
		table.AddRow(name, count)
	}
	table.Render(app.stdout)
	return nil
}
