package app

import (
	"fmt"

	"github.com/khaney64/baseball/internal/domain/players"
)

// UnknownTeamError reports a team token that matched neither an
// abbreviation nor a full-name substring.
type UnknownTeamError struct {
	Query string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team '%s'", e.Query)
}

// NoGamesError reports an empty schedule for a lookup date.
type NoGamesError struct {
	Date string
}

func (e *NoGamesError) Error() string {
	return fmt.Sprintf("no games scheduled for %s", e.Date)
}

// NotPlayingError reports that a resolved team has no game on the date.
type NotPlayingError struct {
	TeamName     string
	Abbreviation string
	Date         string
}

func (e *NotPlayingError) Error() string {
	return fmt.Sprintf("%s (%s) is not playing on %s", e.TeamName, e.Abbreviation, e.Date)
}

// InvalidDateError reports a date argument that is not MM/DD/YYYY.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date format '%s', use MM/DD/YYYY", e.Value)
}

// GameFetchError reports a live-feed fetch that returned nothing.
type GameFetchError struct {
	GamePk int
}

func (e *GameFetchError) Error() string {
	return fmt.Sprintf("could not fetch live data for game %d", e.GamePk)
}

// NoPlayersError reports a player search with no usable matches.
type NoPlayersError struct {
	Query string
}

func (e *NoPlayersError) Error() string {
	return fmt.Sprintf("no players found matching '%s'", e.Query)
}

// AmbiguousPlayerError reports a name that matched several players; the
// caller must re-invoke with a numeric identifier.
type AmbiguousPlayerError struct {
	Query   string
	Matches []players.PlayerInfo
}

func (e *AmbiguousPlayerError) Error() string {
	return fmt.Sprintf("multiple players match '%s'", e.Query)
}

// PlayerFetchError reports a stats fetch that returned nothing.
type PlayerFetchError struct {
	PlayerID int
}

func (e *PlayerFetchError) Error() string {
	return fmt.Sprintf("could not fetch stats for player %d", e.PlayerID)
}
