package ops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jacksmith/playit/internal/player"
	"github.com/jacksmith/playit/internal/search"
)

// ErrEmptyPlaylist is returned when playback is requested for a playlist
// with no items.
var ErrEmptyPlaylist = errors.New("the playlist is empty, add items with --add")

// PlaylistEdit describes the mutations of one edit session.
type PlaylistEdit struct {
	Add     []string // queries or addresses, appended in order
	Remove  []string // exact addresses, first match removed
	Shuffle bool
}

// Empty reports whether the edit requests no mutation.
func (e PlaylistEdit) Empty() bool {
	return len(e.Add) == 0 && len(e.Remove) == 0 && !e.Shuffle
}

// Warning is a non-fatal problem met while editing a playlist.
type Warning struct {
	Item        string
	Err         error
	Suggestions []string
}

func (w Warning) String() string {
	if len(w.Suggestions) == 0 {
		return w.Err.Error()
	}
	return fmt.Sprintf("%s (did you mean %s?)", w.Err, strings.Join(w.Suggestions, ", "))
}

// NotInPlaylistError reports a remove that matched no item.
type NotInPlaylistError struct {
	Playlist string
	Address  string
}

func (e *NotInPlaylistError) Error() string {
	return fmt.Sprintf("%q is not in playlist %q", e.Address, e.Playlist)
}

// EditResult summarizes an edit session.
type EditResult struct {
	Added    []string
	Removed  []string
	Shuffled bool
	Written  bool
	Warnings []Warning
}

// EditPlaylist applies edit to pl: adds in order, then removes, then the
// shuffle. Failed adds and missing removes become warnings. The file is
// written once if any mutation was requested, so a new playlist is created
// even when every add failed.
//
// pl must already hold its file content when the file exists.
func EditPlaylist(ctx context.Context, pl Playlist, edit PlaylistEdit) (EditResult, error) {
	var res EditResult
	if edit.Empty() {
		return res, nil
	}

	for _, query := range edit.Add {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		address, err := pl.Add(ctx, query)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Item: query, Err: err})
			continue
		}
		res.Added = append(res.Added, address)
	}

	for _, address := range edit.Remove {
		if pl.Remove(address) {
			res.Removed = append(res.Removed, address)
			continue
		}
		res.Warnings = append(res.Warnings, Warning{
			Item:        address,
			Err:         &NotInPlaylistError{Playlist: pl.Name(), Address: address},
			Suggestions: search.Suggest(address, pl.Items()),
		})
	}

	if edit.Shuffle {
		pl.Shuffle()
		res.Shuffled = true
	}

	if err := pl.Write(); err != nil {
		return res, err
	}
	res.Written = true
	return res, nil
}

// RebuildPlaylist replaces the items of pl with lines, resolving every line
// that is not an address, and writes the file. Lines that cannot be resolved
// are dropped and reported as warnings.
func RebuildPlaylist(ctx context.Context, pl Playlist, lines []string) (EditResult, error) {
	var res EditResult
	pl.Replace(nil)
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		address, err := pl.Add(ctx, line)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Item: line, Err: err})
			continue
		}
		if address != line {
			res.Added = append(res.Added, address)
		}
	}

	if err := pl.Write(); err != nil {
		return res, err
	}
	res.Written = true
	return res, nil
}

// SelectPlayback splits items into the primary address and the remaining
// addresses as bare player arguments, in order and with duplicates kept.
func SelectPlayback(items []string) (string, []player.Flag, error) {
	if len(items) == 0 {
		return "", nil, ErrEmptyPlaylist
	}
	extras := make([]player.Flag, 0, len(items)-1)
	for _, item := range items[1:] {
		extras = append(extras, player.Bare(item))
	}
	return items[0], extras, nil
}
