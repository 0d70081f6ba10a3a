package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/khaney64/baseball/internal/app"
)

func (a *App) runStats(ctx context.Context, args []string) int {
	fs := a.newFlagSet("stats")
	season := fs.Int("season", 0, "season year (default: current year)")
	format := fs.String("format", "text", "output format: text or json")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return a.parseFailure(err)
	}
	if !validFormat(*format) {
		return a.badFormat(*format)
	}
	if len(positional) == 0 {
		fmt.Fprintln(a.Stderr, "Usage: baseball stats <playerID|name> [--season YEAR] [--format text|json]")
		return 2
	}
	ref := app.ParseRef(strings.Join(positional, " "))

	stats, err := a.Players.Stats(ctx, ref, *season)
	if err != nil {
		return a.fail(err)
	}

	if *format == "json" {
		return a.renderJSON(stats)
	}
	writePlayerStats(a.Stdout, stats)
	return 0
}
