package players

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/khaney64/baseball/internal/app"
	domainplayers "github.com/khaney64/baseball/internal/domain/players"
	"github.com/khaney64/baseball/internal/domain/teams"
	"github.com/khaney64/baseball/internal/providers"
)

// Service searches players and resolves season stats.
type Service struct {
	provider providers.PlayerProvider
	clock    clockwork.Clock
}

// NewService constructs a player service.
func NewService(provider providers.PlayerProvider, clock clockwork.Clock) *Service {
	return &Service{provider: provider, clock: clock}
}

// Search finds active players by name, optionally restricted to one team.
// Zero matches is a hard failure.
func (s *Service) Search(ctx context.Context, name, team string) ([]domainplayers.PlayerInfo, error) {
	teamAbbr := ""
	if team != "" {
		abbr, _, ok := teams.Lookup(team)
		if !ok {
			return nil, &app.UnknownTeamError{Query: team}
		}
		teamAbbr = abbr
	}

	matches, err := s.provider.SearchPlayers(ctx, name, teamAbbr)
	if err != nil || len(matches) == 0 {
		return nil, &app.NoPlayersError{Query: name}
	}
	return matches, nil
}

// Stats resolves a player reference and fetches one season's stat lines.
// A zero season means the current year. An ambiguous name never reaches
// the stats endpoint.
func (s *Service) Stats(ctx context.Context, ref app.Ref, season int) (*domainplayers.PlayerStats, error) {
	if season == 0 {
		season = s.clock.Now().Year()
	}

	playerID := ref.ID()
	if !ref.ByID() {
		matches, err := s.Search(ctx, ref.Name(), "")
		if err != nil {
			return nil, err
		}
		if len(matches) > 1 {
			return nil, &app.AmbiguousPlayerError{Query: ref.Name(), Matches: matches}
		}
		playerID = matches[0].ID
	}

	stats, err := s.provider.FetchPlayerStats(ctx, playerID, season)
	if err != nil {
		return nil, &app.PlayerFetchError{PlayerID: playerID}
	}
	return stats, nil
}
