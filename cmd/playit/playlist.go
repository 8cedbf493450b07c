package main

import (
	"fmt"

	"github.com/jacksmith/playit/internal/cli"
	"github.com/jacksmith/playit/internal/ops"
	"github.com/jacksmith/playit/internal/storage"
	"github.com/spf13/cobra"
)

var playlistCmd = &cobra.Command{
	Use:   "playlist <name>",
	Short: "Edit or play a playlist",
	Long: `Edit or play a playlist.

Playlists live in <config dir>/playit/<name>.pl, or in --prefix when given.
A playlist that does not exist yet is created by the first edit.

Edits run in a fixed order: every --add, then every --remove, then --shuffle,
then --edit. Lines typed in the editor that are not URLs are searched like
--add. A failed search or a --remove that matches nothing is reported as a
warning and the other edits still apply.

With no flags the playlist is listed.

Examples:
  playit playlist chill -a "lofi hip hop" -a https://youtu.be/5qap5aO4i9A
  playit playlist chill -r https://youtu.be/5qap5aO4i9A
  playit playlist chill -s -p --loop
  playit playlist chill -e
  playit playlist chill --delete`,
	Args:              cobra.ExactArgs(1),
	RunE:              runPlaylist,
	ValidArgsFunction: completePlaylistNames,
}

var (
	playlistPrefix  string
	playlistAdd     []string
	playlistRemove  []string
	playlistShuffle bool
	playlistPlay    bool
	playlistEdit    bool
	playlistDelete  bool
)

func init() {
	playlistCmd.Flags().StringVar(&playlistPrefix, "prefix", "", "directory holding the playlist files")
	playlistCmd.Flags().StringArrayVarP(&playlistAdd, "add", "a", nil, "add a URL or the result of a search query (repeatable)")
	playlistCmd.Flags().StringArrayVarP(&playlistRemove, "remove", "r", nil, "remove the first item with this address (repeatable)")
	playlistCmd.Flags().BoolVarP(&playlistShuffle, "shuffle", "s", false, "shuffle the items")
	playlistCmd.Flags().BoolVarP(&playlistPlay, "play", "p", false, "play the playlist after editing")
	playlistCmd.Flags().BoolVarP(&playlistEdit, "edit", "e", false, "edit the items in $EDITOR")
	playlistCmd.Flags().BoolVar(&playlistDelete, "delete", false, "delete the playlist file")
	playlistCmd.MarkFlagsMutuallyExclusive("delete", "add")
	playlistCmd.MarkFlagsMutuallyExclusive("delete", "remove")
	playlistCmd.MarkFlagsMutuallyExclusive("delete", "shuffle")
	playlistCmd.MarkFlagsMutuallyExclusive("delete", "play")
	playlistCmd.MarkFlagsMutuallyExclusive("delete", "edit")
	rootCmd.AddCommand(playlistCmd)
}

func runPlaylist(cmd *cobra.Command, args []string) error {
	name := args[0]
	s := app.storage(playlistPrefix)

	if playlistDelete {
		if err := s.DeletePlaylist(name); err != nil {
			return err
		}
		fmt.Fprintf(app.stdout, "%s %s\n", cli.Red("deleted"), name)
		return nil
	}

	pl, err := s.Playlist(name)
	if err != nil {
		return err
	}
	if pl.Exists() {
		if err := pl.Read(); err != nil {
			return err
		}
	}

	edit := ops.PlaylistEdit{Add: playlistAdd, Remove: playlistRemove, Shuffle: playlistShuffle}
	res, err := ops.EditPlaylist(commandContext(cmd), pl, edit)
	for _, w := range res.Warnings {
		cli.Warn(app.stderr, "%s", w)
	}
	if err != nil {
		return err
	}
	reportEdit(res)

	if playlistEdit {
		lines, err := cli.EditItems(pl.Items())
		if err != nil {
			return err
		}
		res, err := ops.RebuildPlaylist(commandContext(cmd), pl, lines)
		for _, w := range res.Warnings {
			cli.Warn(app.stderr, "%s", w)
		}
		if err != nil {
			return err
		}
		reportEdit(res)
		fmt.Fprintf(app.stdout, "%s %s (%d items)\n", cli.Green("saved"), name, pl.Len())
	}

	if playlistPlay {
		primary, extras, err := ops.SelectPlayback(pl.Items())
		if err != nil {
			return err
		}
		return app.start(primary, extras)
	}

	if edit.Empty() && !playlistEdit {
		if !pl.Exists() {
			return &storage.NotFoundError{Name: name}
		}
		printItems(pl.Items())
	}
	return nil
}

func reportEdit(res ops.EditResult) {
	for _, address := range res.Added {
		fmt.Fprintf(app.stdout, "%s %s\n", cli.Green("added"), address)
	}
	for _, address := range res.Removed {
		fmt.Fprintf(app.stdout, "%s %s\n", cli.Red("removed"), address)
	}
	if res.Shuffled {
		fmt.Fprintln(app.stdout, cli.Yellow("shuffled"))
	}
}

// printItems lists items with their 1-based position.
func printItems(items []string) {
	if len(items) == 0 {
		fmt.Fprintln(app.stdout, cli.Gray("(empty)"))
		return
	}
	table := cli.NewTable()
	for i, item := range items {
		table.AddRow(cli.Gray(fmt.Sprintf("%d", i+1)), item)
	}
	table.Render(app.stdout)
}
