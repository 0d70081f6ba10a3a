package games

import (
	"time"

	"github.com/khaney64/baseball/internal/domain/teams"
)

// Detailed game states the renderer treats specially. The upstream field
// is free text; anything else passes through verbatim.
const (
	StatusScheduled        = "Scheduled"
	StatusPreGame          = "Pre-Game"
	StatusWarmup           = "Warmup"
	StatusInProgress       = "In Progress"
	StatusManagerChallenge = "Manager Challenge"
	StatusFinal            = "Final"
)

// Live reports whether a status counts as in-progress play.
func Live(status string) bool {
	return status == StatusInProgress || status == StatusManagerChallenge
}

// GameSummary is one schedule entry for a single game.
type GameSummary struct {
	GamePk     int           `json:"game_pk"`
	Status     string        `json:"status"`
	AwayTeam   teams.Team    `json:"away_team"`
	HomeTeam   teams.Team    `json:"home_team"`
	AwayRecord string        `json:"away_record"`
	HomeRecord string        `json:"home_record"`
	AwayScore  int           `json:"away_score"`
	HomeScore  int           `json:"home_score"`
	Venue      string        `json:"venue"`
	StartTime  *time.Time    `json:"start_time"`
	DateLabel  string        `json:"-"`
}

// Inning is one line-score cell pair.
type Inning struct {
	AwayRuns int `json:"away_runs"`
	HomeRuns int `json:"home_runs"`
}

// LineTotals is one side's runs/hits/errors totals.
type LineTotals struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// LineScore is the per-inning tally plus totals for both sides.
type LineScore struct {
	Innings       []Inning   `json:"innings"`
	CurrentInning int        `json:"current_inning"`
	IsTopInning   bool       `json:"is_top_inning"`
	Away          LineTotals `json:"away"`
	Home          LineTotals `json:"home"`
}

// Matchup is the current batter/pitcher pairing.
type Matchup struct {
	BatterName  string `json:"batter_name"`
	PitcherName string `json:"pitcher_name"`
}

// PlayResult is the most recent completed play.
type PlayResult struct {
	Description string `json:"description"`
	EventType   string `json:"event_type"`
	RBI         int    `json:"rbi"`
	AwayScore   int    `json:"away_score"`
	HomeScore   int    `json:"home_score"`
}

// Runners flags which bases are occupied.
type Runners struct {
	First  bool `json:"first"`
	Second bool `json:"second"`
	Third  bool `json:"third"`
}

// GameStatus is the detailed live view of one game from the feed endpoint.
type GameStatus struct {
	GamePk     int         `json:"game_pk"`
	Status     string      `json:"status"`
	Venue      string      `json:"venue"`
	StartTime  *time.Time  `json:"start_time"`
	AwayTeam   teams.Team  `json:"away_team"`
	HomeTeam   teams.Team  `json:"home_team"`
	AwayScore  int         `json:"away_score"`
	HomeScore  int         `json:"home_score"`
	Inning     int         `json:"inning"`
	InningHalf string      `json:"inning_half"`
	Balls      int         `json:"balls"`
	Strikes    int         `json:"strikes"`
	Outs       int         `json:"outs"`
	Runners    Runners     `json:"runners"`
	Matchup    *Matchup    `json:"matchup"`
	LastPlay   *PlayResult `json:"last_play"`
	LineScore  LineScore   `json:"line_score"`
}

// Live reports whether the game is currently in progress.
func (g GameStatus) Live() bool {
	return Live(g.Status)
}

// ScheduleResponse is the JSON payload for the games command.
type ScheduleResponse struct {
	Date  string        `json:"date"`
	Games []GameSummary `json:"games"`
}
