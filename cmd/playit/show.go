package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the items of a playlist",
	Long: `Show the items of a playlist in playback order.

Examples:
  playit show chill
  playit show chill --prefix ~/music/playlists`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completePlaylistNames,
}

var showPrefix string

func init() {
	showCmd.Flags().StringVar(&showPrefix, "prefix", "", "directory holding the playlist files")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	pl, err := app.storage(showPrefix).LoadPlaylist(args[0])
	if err != nil {
		return err
	}
	printItems(pl.Items())
	return nil
}
