package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/khaney64/baseball/internal/domain/players"
)

func (a *App) runPlayer(ctx context.Context, args []string) int {
	fs := a.newFlagSet("player")
	team := fs.String("team", "", "restrict to one team (abbreviation or name)")
	format := fs.String("format", "text", "output format: text or json")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return a.parseFailure(err)
	}
	if !validFormat(*format) {
		return a.badFormat(*format)
	}
	if len(positional) == 0 {
		fmt.Fprintln(a.Stderr, "Usage: baseball player <name> [--team ABBR] [--format text|json]")
		return 2
	}
	name := strings.Join(positional, " ")

	matches, err := a.Players.Search(ctx, name, *team)
	if err != nil {
		return a.fail(err)
	}

	if *format == "json" {
		return a.renderJSON(players.SearchResponse{Players: matches})
	}
	writePlayersTable(a.Stdout, matches)
	return 0
}
