package providers

import (
	"context"

	domaingames "github.com/khaney64/baseball/internal/domain/games"
	domainplayers "github.com/khaney64/baseball/internal/domain/players"
)

// ScheduleProvider fetches schedule entries for a date or inclusive range.
// An empty end date means a single day. Zero returned dates yield an empty
// slice, not an error.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, startDate, endDate string) ([]domaingames.GameSummary, error)
}

// LiveGameProvider fetches the detailed live feed for one game.
type LiveGameProvider interface {
	FetchLiveGame(ctx context.Context, gamePk int) (*domaingames.GameStatus, error)
}

// PlayerProvider searches active players and fetches season stat lines.
type PlayerProvider interface {
	SearchPlayers(ctx context.Context, name, teamAbbr string) ([]domainplayers.PlayerInfo, error)
	FetchPlayerStats(ctx context.Context, playerID, season int) (*domainplayers.PlayerStats, error)
}

// GameProvider combines the game-facing capabilities.
type GameProvider interface {
	ScheduleProvider
	LiveGameProvider
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	PlayerProvider
}
