package cli

import (
	"context"
	"fmt"

	appgames "github.com/khaney64/baseball/internal/app/games"
	"github.com/khaney64/baseball/internal/domain/games"
)

func (a *App) runGames(ctx context.Context, args []string) int {
	fs := a.newFlagSet("games")
	team := fs.String("team", "", "restrict to one team (abbreviation or name)")
	date := fs.String("date", "", "date as MM/DD/YYYY (default: today)")
	days := fs.Int("days", 1, "number of days starting at the date")
	format := fs.String("format", "text", "output format: text or json")

	if _, err := parseInterleaved(fs, args); err != nil {
		return a.parseFailure(err)
	}
	if !validFormat(*format) {
		return a.badFormat(*format)
	}

	schedule, err := a.Games.List(ctx, appgames.ListOptions{
		Team: *team,
		Date: *date,
		Days: *days,
	})
	if err != nil {
		return a.fail(err)
	}

	if *format == "json" {
		payload := games.ScheduleResponse{Date: schedule.DateLabel, Games: schedule.Games}
		if payload.Games == nil {
			payload.Games = []games.GameSummary{}
		}
		return a.renderJSON(payload)
	}

	if len(schedule.Games) == 0 {
		suffix := ""
		if schedule.TeamFilter != "" {
			suffix = fmt.Sprintf(" (team: %s)", schedule.TeamFilter)
		}
		fmt.Fprintf(a.Stdout, "No games found for %s%s\n", schedule.DateLabel, suffix)
		return 0
	}

	writeGamesTable(a.Stdout, schedule.DateLabel, schedule.Games, schedule.MultiDay)
	return 0
}
