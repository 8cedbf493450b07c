package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/playit/internal/cli"
	"github.com/jacksmith/playit/internal/ops"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <url|query...>",
	Short: "Play a URL or the first search result for a query",
	Long: `Play a URL directly, or search for a query and play the first result.

Anything that does not start with http:// or https:// is a search query.
Query results are cached; use --no-cache to search every time.

Examples:
  playit play https://www.youtube.com/watch?v=jfKfPfyJRdk
  playit play lofi hip hop radio
  playit play -w --loop "rain sounds"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		return &cli.ValidationError{Message: "a URL or search query is required"}
	}

	res, err := ops.ResolveQuery(commandContext(cmd), input, app.cache(), app.resolver, app.logger)
	if err != nil {
		return err
	}
	if res.Source != ops.SourceDirect {
		fmt.Fprintf(app.stdout, "%s %s\n", cli.Gray(string(res.Source)+":"), res.Address)
	}

	return app.start(res.Address, nil)
}
