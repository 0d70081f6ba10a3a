package games

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/khaney64/baseball/internal/app"
	domaingames "github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/domain/teams"
	"github.com/khaney64/baseball/internal/providers"
	"github.com/khaney64/baseball/internal/timeutil"
)

// Service resolves game references and lists schedules.
type Service struct {
	provider providers.GameProvider
	clock    clockwork.Clock
	loc      *time.Location
}

// NewService constructs a game service. A nil location means the
// process-local zone.
func NewService(provider providers.GameProvider, clock clockwork.Clock, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{provider: provider, clock: clock, loc: loc}
}

// ListOptions filter the games listing.
type ListOptions struct {
	Team string
	Date string
	Days int
}

// Schedule is a listed date (or range) with its games.
type Schedule struct {
	DateLabel  string
	MultiDay   bool
	TeamFilter string
	Games      []domaingames.GameSummary
}

// List fetches the schedule for a date or range, optionally filtered to
// one team. An empty schedule is a valid result, not an error.
func (s *Service) List(ctx context.Context, opts ListOptions) (Schedule, error) {
	startDate := opts.Date
	if startDate == "" {
		startDate = timeutil.FormatDate(s.clock.Now().In(s.loc))
	}
	start, err := timeutil.ParseDate(startDate)
	if err != nil {
		return Schedule{}, &app.InvalidDateError{Value: startDate}
	}

	endDate := ""
	if opts.Days > 1 {
		endDate = timeutil.FormatDate(start.AddDate(0, 0, opts.Days-1))
	}

	teamAbbr := ""
	if opts.Team != "" {
		abbr, _, ok := teams.Lookup(opts.Team)
		if !ok {
			return Schedule{}, &app.UnknownTeamError{Query: opts.Team}
		}
		teamAbbr = abbr
	}

	label := startDate
	if endDate != "" {
		label = startDate + " - " + endDate
	}

	// A failed fetch reads as an empty schedule; the client already
	// logged the cause.
	summaries, err := s.provider.FetchSchedule(ctx, startDate, endDate)
	if err != nil {
		summaries = nil
	}

	if teamAbbr != "" {
		filtered := make([]domaingames.GameSummary, 0, len(summaries))
		for _, g := range summaries {
			if g.AwayTeam.Abbreviation == teamAbbr || g.HomeTeam.Abbreviation == teamAbbr {
				filtered = append(filtered, g)
			}
		}
		summaries = filtered
	}

	return Schedule{
		DateLabel:  label,
		MultiDay:   endDate != "",
		TeamFilter: teamAbbr,
		Games:      summaries,
	}, nil
}

// ResolveGamePk turns a game reference into a game PK. Numeric references
// pass through untouched; team references scan the date's schedule for a
// game the team plays on either side, first match in schedule order.
func (s *Service) ResolveGamePk(ctx context.Context, ref app.Ref, date string) (int, error) {
	if ref.ByID() {
		return ref.ID(), nil
	}

	abbr, info, ok := teams.Lookup(ref.Name())
	if !ok {
		return 0, &app.UnknownTeamError{Query: ref.Name()}
	}

	lookupDate := date
	if lookupDate == "" {
		lookupDate = timeutil.FormatDate(s.clock.Now().In(s.loc))
	}

	summaries, err := s.provider.FetchSchedule(ctx, lookupDate, "")
	if err != nil || len(summaries) == 0 {
		return 0, &app.NoGamesError{Date: lookupDate}
	}

	for _, g := range summaries {
		if g.AwayTeam.Abbreviation == abbr || g.HomeTeam.Abbreviation == abbr {
			return g.GamePk, nil
		}
	}
	return 0, &app.NotPlayingError{TeamName: info.Name, Abbreviation: abbr, Date: lookupDate}
}

// Live resolves a game reference and fetches its live feed.
func (s *Service) Live(ctx context.Context, ref app.Ref, date string) (*domaingames.GameStatus, error) {
	gamePk, err := s.ResolveGamePk(ctx, ref, date)
	if err != nil {
		return nil, err
	}

	status, err := s.provider.FetchLiveGame(ctx, gamePk)
	if err != nil {
		return nil, &app.GameFetchError{GamePk: gamePk}
	}
	return status, nil
}
