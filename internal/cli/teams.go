package cli

import (
	"github.com/khaney64/baseball/internal/domain/teams"
)

type teamsPayload struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	ID           int    `json:"id"`
}

func (a *App) runTeams(args []string) int {
	fs := a.newFlagSet("teams")
	format := fs.String("format", "text", "output format: text or json")

	if _, err := parseInterleaved(fs, args); err != nil {
		return a.parseFailure(err)
	}
	if !validFormat(*format) {
		return a.badFormat(*format)
	}

	entries := teams.All()
	if *format == "json" {
		payload := teamsPayload{Teams: make([]teamEntry, 0, len(entries))}
		for _, e := range entries {
			payload.Teams = append(payload.Teams, teamEntry{
				Abbreviation: e.Abbreviation,
				Name:         e.Info.Name,
				ID:           e.Info.ID,
			})
		}
		return a.renderJSON(payload)
	}

	writeTeamsTable(a.Stdout, entries)
	return 0
}
