package statsapi

import (
	"fmt"
	"time"

	"github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/domain/players"
	"github.com/khaney64/baseball/internal/domain/teams"
	"github.com/khaney64/baseball/internal/timeutil"
)

func mapTeam(t teamNode) teams.Team {
	abbr := t.Abbreviation
	if abbr == "" {
		abbr = teams.AbbreviationForID(t.ID)
	}
	return teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: abbr,
	}
}

func mapGameSummary(dateLabel string, g scheduleGame, loc *time.Location) games.GameSummary {
	return games.GameSummary{
		GamePk:     g.GamePk,
		Status:     statusOrUnknown(g.Status),
		AwayTeam:   mapTeam(g.Teams.Away.Team),
		HomeTeam:   mapTeam(g.Teams.Home.Team),
		AwayRecord: formatRecord(g.Teams.Away.LeagueRecord),
		HomeRecord: formatRecord(g.Teams.Home.LeagueRecord),
		AwayScore:  g.Teams.Away.Score,
		HomeScore:  g.Teams.Home.Score,
		Venue:      g.Venue.Name,
		StartTime:  timeutil.ParseGameTime(g.GameDate, loc),
		DateLabel:  dateLabel,
	}
}

func mapGameStatus(gamePk int, payload liveFeedResponse, loc *time.Location) games.GameStatus {
	linescore := payload.LiveData.Linescore

	status := games.GameStatus{
		GamePk:     gamePk,
		Status:     statusOrUnknown(payload.GameData.Status),
		Venue:      payload.GameData.Venue.Name,
		StartTime:  timeutil.ParseGameTime(payload.GameData.Datetime.DateTime, loc),
		AwayTeam:   mapTeam(payload.GameData.Teams.Away),
		HomeTeam:   mapTeam(payload.GameData.Teams.Home),
		AwayScore:  linescore.Teams.Away.Runs,
		HomeScore:  linescore.Teams.Home.Runs,
		Inning:     linescore.CurrentInning,
		InningHalf: inningHalfLabel(linescore.IsTopInning),
		Outs:       linescore.Outs,
		LineScore:  mapLineScore(linescore),
	}

	play := payload.LiveData.Plays.CurrentPlay
	if play == nil {
		return status
	}

	status.Balls = play.Count.Balls
	status.Strikes = play.Count.Strikes
	if play.Count.Outs != nil {
		status.Outs = *play.Count.Outs
	}

	if play.Matchup != nil {
		status.Matchup = &games.Matchup{
			BatterName:  play.Matchup.Batter.FullName,
			PitcherName: play.Matchup.Pitcher.FullName,
		}
		status.Runners = games.Runners{
			First:  play.Matchup.PostOnFirst != nil,
			Second: play.Matchup.PostOnSecond != nil,
			Third:  play.Matchup.PostOnThird != nil,
		}
	}

	if play.Result.Description != "" {
		status.LastPlay = &games.PlayResult{
			Description: play.Result.Description,
			EventType:   play.Result.Event,
			RBI:         play.Result.RBI,
			AwayScore:   play.Result.AwayScore,
			HomeScore:   play.Result.HomeScore,
		}
	}

	return status
}

func mapLineScore(n linescoreNode) games.LineScore {
	innings := make([]games.Inning, 0, len(n.Innings))
	for _, inning := range n.Innings {
		innings = append(innings, games.Inning{
			AwayRuns: inning.Away.Runs,
			HomeRuns: inning.Home.Runs,
		})
	}
	return games.LineScore{
		Innings:       innings,
		CurrentInning: n.CurrentInning,
		IsTopInning:   n.IsTopInning != nil && *n.IsTopInning,
		Away:          games.LineTotals(n.Teams.Away),
		Home:          games.LineTotals(n.Teams.Home),
	}
}

func mapPlayer(p personDetail) players.PlayerInfo {
	return players.PlayerInfo{
		ID:               p.ID,
		FullName:         p.FullName,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Active:           p.Active,
		PrimaryNumber:    p.PrimaryNumber,
		Height:           p.Height,
		Weight:           p.Weight,
		BirthDate:        p.BirthDate,
		Age:              p.CurrentAge,
		MLBDebutDate:     p.MLBDebutDate,
		Position:         p.PrimaryPosition.Abbreviation,
		PositionName:     p.PrimaryPosition.Name,
		Bats:             p.BatSide.Code,
		Throws:           p.PitchHand.Code,
		TeamID:           p.CurrentTeam.ID,
		TeamName:         p.CurrentTeam.Name,
		TeamAbbreviation: teams.AbbreviationForID(p.CurrentTeam.ID),
	}
}

// mapSeasonStats picks one split per stat group. The API returns one split
// per team stint for traded players; the last entry is the most recent, so
// last wins.
func mapSeasonStats(payload statsResponse) (*players.BattingStats, *players.PitchingStats) {
	var batting *players.BattingStats
	var pitching *players.PitchingStats

	for _, group := range payload.Stats {
		if len(group.Splits) == 0 {
			continue
		}
		split := group.Splits[len(group.Splits)-1]
		switch group.Group.DisplayName {
		case "hitting":
			mapped := mapBattingStats(split)
			batting = &mapped
		case "pitching":
			mapped := mapPitchingStats(split)
			pitching = &mapped
		}
	}

	return batting, pitching
}

func mapBattingStats(s statSplit) players.BattingStats {
	return players.BattingStats{
		Season:           s.Season,
		TeamName:         s.Team.Name,
		GamesPlayed:      s.Stat.GamesPlayed,
		AtBats:           s.Stat.AtBats,
		PlateAppearances: s.Stat.PlateAppearances,
		Runs:             s.Stat.Runs,
		Hits:             s.Stat.Hits,
		Doubles:          s.Stat.Doubles,
		Triples:          s.Stat.Triples,
		HomeRuns:         s.Stat.HomeRuns,
		RBI:              s.Stat.RBI,
		StolenBases:      s.Stat.StolenBases,
		Walks:            s.Stat.BaseOnBalls,
		Strikeouts:       s.Stat.StrikeOuts,
		AVG:              stringOr(s.Stat.AVG, ".000"),
		OBP:              stringOr(s.Stat.OBP, ".000"),
		SLG:              stringOr(s.Stat.SLG, ".000"),
		OPS:              stringOr(s.Stat.OPS, ".000"),
	}
}

func mapPitchingStats(s statSplit) players.PitchingStats {
	return players.PitchingStats{
		Season:         s.Season,
		TeamName:       s.Team.Name,
		GamesPlayed:    s.Stat.GamesPlayed,
		GamesStarted:   s.Stat.GamesStarted,
		Wins:           s.Stat.Wins,
		Losses:         s.Stat.Losses,
		ERA:            stringOr(s.Stat.ERA, "0.00"),
		InningsPitched: stringOr(s.Stat.InningsPitched, "0.0"),
		Hits:           s.Stat.Hits,
		Runs:           s.Stat.Runs,
		EarnedRuns:     s.Stat.EarnedRuns,
		HomeRuns:       s.Stat.HomeRuns,
		Strikeouts:     s.Stat.StrikeOuts,
		Walks:          s.Stat.BaseOnBalls,
		Saves:          s.Stat.Saves,
		Holds:          s.Stat.Holds,
		WHIP:           stringOr(s.Stat.WHIP, "0.00"),
		StrikeoutsPer9: stringOr(s.Stat.StrikeoutsPer9Inn, "0.00"),
		WalksPer9:      stringOr(s.Stat.WalksPer9Inn, "0.00"),
	}
}

func formatRecord(r recordNode) string {
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

func statusOrUnknown(s statusNode) string {
	if s.DetailedState == "" {
		return "Unknown"
	}
	return s.DetailedState
}

func inningHalfLabel(isTop *bool) string {
	if isTop == nil || *isTop {
		return "Top"
	}
	return "Bottom"
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
