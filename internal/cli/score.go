package cli

import (
	"context"
	"fmt"

	"github.com/khaney64/baseball/internal/app"
)

func (a *App) runScore(ctx context.Context, args []string) int {
	fs := a.newFlagSet("score")
	date := fs.String("date", "", "date as MM/DD/YYYY used for team lookups (default: today)")
	format := fs.String("format", "text", "output format: text or json")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return a.parseFailure(err)
	}
	if !validFormat(*format) {
		return a.badFormat(*format)
	}
	if len(positional) != 1 {
		fmt.Fprintln(a.Stderr, "Usage: baseball score <gamePk|team> [--date MM/DD/YYYY] [--format text|json]")
		return 2
	}

	status, err := a.Games.Live(ctx, app.ParseRef(positional[0]), *date)
	if err != nil {
		return a.fail(err)
	}

	if *format == "json" {
		return a.renderJSON(status)
	}
	writeScore(a.Stdout, status)
	return 0
}
