package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultHTTPTimeout = 30 * time.Second

	// sportID 1 is MLB; the schedule endpoint serves minor leagues too.
	sportID = "1"

	schedulePath     = "/api/v1/schedule/games"
	liveFeedPath     = "/api/v1.1/game/%d/feed/live"
	peopleSearchPath = "/api/v1/people/search"
	peoplePath       = "/api/v1/people/%d"
	peopleStatsPath  = "/api/v1/people/%d/stats"
)
