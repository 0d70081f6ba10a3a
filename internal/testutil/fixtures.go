package testutil

import (
	"github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/domain/players"
	"github.com/khaney64/baseball/internal/domain/teams"
)

// SummaryFor returns a schedule entry between two clubs identified by
// abbreviation, looked up in the static table.
func SummaryFor(gamePk int, awayAbbr, homeAbbr string) games.GameSummary {
	return games.GameSummary{
		GamePk:     gamePk,
		Status:     games.StatusScheduled,
		AwayTeam:   TeamFor(awayAbbr),
		HomeTeam:   TeamFor(homeAbbr),
		AwayRecord: "0-0",
		HomeRecord: "0-0",
	}
}

// TeamFor resolves a static-table abbreviation into a domain team.
func TeamFor(abbr string) teams.Team {
	resolved, info, ok := teams.Lookup(abbr)
	if !ok {
		return teams.Team{Abbreviation: abbr}
	}
	return teams.Team{ID: info.ID, Name: info.Name, Abbreviation: resolved}
}

// PlayerFor returns a minimal active player fixture.
func PlayerFor(id int, name, position, teamAbbr string) players.PlayerInfo {
	team := TeamFor(teamAbbr)
	return players.PlayerInfo{
		ID:               id,
		FullName:         name,
		Active:           true,
		Position:         position,
		TeamID:           team.ID,
		TeamName:         team.Name,
		TeamAbbreviation: team.Abbreviation,
	}
}
