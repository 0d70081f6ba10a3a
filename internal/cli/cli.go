// Package cli wires the subcommands: argument parsing, reference
// resolution via the app services, and text/JSON rendering.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	appgames "github.com/khaney64/baseball/internal/app/games"
	appplayers "github.com/khaney64/baseball/internal/app/players"

	"github.com/khaney64/baseball/internal/app"
)

// App holds the command dependencies and output streams.
type App struct {
	Games   *appgames.Service
	Players *appplayers.Service
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run dispatches a subcommand and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	command, rest := args[0], args[1:]
	switch command {
	case "teams":
		return a.runTeams(rest)
	case "games":
		return a.runGames(ctx, rest)
	case "live":
		return a.runLive(ctx, rest)
	case "score":
		return a.runScore(ctx, rest)
	case "player":
		return a.runPlayer(ctx, rest)
	case "stats":
		return a.runStats(ctx, rest)
	case "-h", "--help", "help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.Stderr, "Error: Unknown command '%s'.\n\n", command)
		a.usage()
		return 2
	}
}

func (a *App) usage() {
	fmt.Fprint(a.Stderr, `Usage: baseball <command> [options]

MLB game schedules, live status, box scores, and player stats.

Commands:
  teams    List all MLB team abbreviations
  games    List games for a date [--team ABBR] [--date MM/DD/YYYY] [--days N]
  live     Live game status for a gamePk or team [--date MM/DD/YYYY]
  score    Box score for a gamePk or team [--date MM/DD/YYYY]
  player   Search active players by name [--team ABBR]
  stats    Season stats for a player ID or name [--season YEAR]

All commands accept --format text|json (default: text).
`)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	return fs
}

// parseInterleaved parses flags and positionals in any order, the way
// argparse-style tools behave. Returns the positional arguments.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	positional := make([]string, 0, len(args))
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func validFormat(format string) bool {
	return format == "text" || format == "json"
}

func (a *App) badFormat(format string) int {
	fmt.Fprintf(a.Stderr, "Error: Invalid format '%s'. Use text or json.\n", format)
	return 2
}

func (a *App) parseFailure(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// fail renders a resolution error with its hint and returns exit code 1.
func (a *App) fail(err error) int {
	var unknownTeam *app.UnknownTeamError
	var ambiguous *app.AmbiguousPlayerError

	switch {
	case errors.As(err, &unknownTeam):
		fmt.Fprintf(a.Stderr, "Error: Unknown team '%s'.\n", unknownTeam.Query)
		fmt.Fprintln(a.Stderr, "Run 'baseball teams' to see valid abbreviations.")
	case errors.As(err, &ambiguous):
		fmt.Fprintf(a.Stderr, "Error: Multiple players match '%s'. Re-run with a player ID:\n", ambiguous.Query)
		for _, p := range ambiguous.Matches {
			team := p.TeamName
			if p.TeamAbbreviation != "" {
				team = fmt.Sprintf("%s (%s)", p.TeamName, p.TeamAbbreviation)
			}
			fmt.Fprintf(a.Stderr, "  %-8d %-24s %-4s %s\n", p.ID, p.FullName, p.Position, team)
		}
	default:
		fmt.Fprintf(a.Stderr, "Error: %s.\n", capitalize(err.Error()))
	}
	return 1
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
