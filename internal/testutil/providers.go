package testutil

import (
	"context"

	"github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/domain/players"
)

// ScheduleCall records one FetchSchedule invocation.
type ScheduleCall struct {
	StartDate string
	EndDate   string
}

// StubGameProvider implements providers.GameProvider for tests.
type StubGameProvider struct {
	Summaries     []games.GameSummary
	ScheduleErr   error
	Status        *games.GameStatus
	LiveErr       error
	ScheduleCalls []ScheduleCall
	LiveCalls     []int
}

func (p *StubGameProvider) FetchSchedule(ctx context.Context, startDate, endDate string) ([]games.GameSummary, error) {
	_ = ctx
	p.ScheduleCalls = append(p.ScheduleCalls, ScheduleCall{StartDate: startDate, EndDate: endDate})
	if p.ScheduleErr != nil {
		return nil, p.ScheduleErr
	}
	return p.Summaries, nil
}

func (p *StubGameProvider) FetchLiveGame(ctx context.Context, gamePk int) (*games.GameStatus, error) {
	_ = ctx
	p.LiveCalls = append(p.LiveCalls, gamePk)
	if p.LiveErr != nil {
		return nil, p.LiveErr
	}
	return p.Status, nil
}

// StubPlayerProvider implements providers.PlayerProvider for tests.
type StubPlayerProvider struct {
	Players     []players.PlayerInfo
	SearchErr   error
	Stats       *players.PlayerStats
	StatsErr    error
	SearchCalls int
	StatsCalls  []int
	SeasonCalls []int
}

func (p *StubPlayerProvider) SearchPlayers(ctx context.Context, name, teamAbbr string) ([]players.PlayerInfo, error) {
	_ = ctx
	p.SearchCalls++
	if p.SearchErr != nil {
		return nil, p.SearchErr
	}
	if teamAbbr == "" {
		return p.Players, nil
	}
	filtered := make([]players.PlayerInfo, 0, len(p.Players))
	for _, player := range p.Players {
		if player.TeamAbbreviation == teamAbbr {
			filtered = append(filtered, player)
		}
	}
	return filtered, nil
}

func (p *StubPlayerProvider) FetchPlayerStats(ctx context.Context, playerID, season int) (*players.PlayerStats, error) {
	_ = ctx
	p.StatsCalls = append(p.StatsCalls, playerID)
	p.SeasonCalls = append(p.SeasonCalls, season)
	if p.StatsErr != nil {
		return nil, p.StatsErr
	}
	return p.Stats, nil
}
