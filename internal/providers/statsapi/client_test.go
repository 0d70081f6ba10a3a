package statsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaney64/baseball/internal/providers"
)

var _ providers.DataProvider = (*Client)(nil)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:  srv.URL,
		Location: time.UTC,
		Logger:   zerolog.Nop(),
	})
}

func TestFetchScheduleSingleDate(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, schedulePath, r.URL.Path)
		gotQuery = map[string]string{
			"sportId": r.URL.Query().Get("sportId"),
			"date":    r.URL.Query().Get("date"),
		}
		_, _ = w.Write([]byte(`{
			"dates": [
				{
					"date": "2025-07-04",
					"games": [
						{
							"gamePk": 718781,
							"gameDate": "2025-07-04T23:10:00Z",
							"status": {"detailedState": "Scheduled"},
							"teams": {
								"away": {"team": {"id": 143, "name": "Philadelphia Phillies"}, "leagueRecord": {"wins": 50, "losses": 36}},
								"home": {"team": {"id": 121, "name": "New York Mets"}, "leagueRecord": {"wins": 48, "losses": 38}}
							},
							"venue": {"name": "Citi Field"}
						}
					]
				}
			]
		}`))
	})

	summaries, err := client.FetchSchedule(context.Background(), "07/04/2025", "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, "1", gotQuery["sportId"])
	assert.Equal(t, "07/04/2025", gotQuery["date"])
	assert.Equal(t, 718781, summaries[0].GamePk)
	assert.Equal(t, "PHI", summaries[0].AwayTeam.Abbreviation)
	assert.Equal(t, "50-36", summaries[0].AwayRecord)
	assert.Equal(t, "2025-07-04", summaries[0].DateLabel)
}

func TestFetchScheduleRangeUsesStartAndEndDates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "07/04/2025", r.URL.Query().Get("startDate"))
		assert.Equal(t, "07/06/2025", r.URL.Query().Get("endDate"))
		assert.Empty(t, r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`{
			"dates": [
				{"date": "2025-07-04", "games": [{"gamePk": 1}]},
				{"date": "2025-07-05", "games": [{"gamePk": 2}, {"gamePk": 3}]}
			]
		}`))
	})

	summaries, err := client.FetchSchedule(context.Background(), "07/04/2025", "07/06/2025")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "2025-07-04", summaries[0].DateLabel)
	assert.Equal(t, "2025-07-05", summaries[1].DateLabel)
	assert.Equal(t, "2025-07-05", summaries[2].DateLabel)
}

func TestFetchScheduleZeroDatesYieldsEmptySlice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dates": []}`))
	})

	summaries, err := client.FetchSchedule(context.Background(), "12/25/2025", "")
	require.NoError(t, err)
	require.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestFetchScheduleErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})

	summaries, err := client.FetchSchedule(context.Background(), "07/04/2025", "")
	require.Error(t, err)
	assert.Nil(t, summaries)
}

func TestFetchScheduleTransportError(t *testing.T) {
	client := NewClient(Config{
		BaseURL: "http://statsapi.test",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})},
		Logger: zerolog.Nop(),
	})

	_, err := client.FetchSchedule(context.Background(), "07/04/2025", "")
	require.Error(t, err)
}

func TestFetchLiveGame(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1.1/game/718781/feed/live", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"gameData": {
				"status": {"detailedState": "In Progress"},
				"teams": {
					"away": {"id": 143, "name": "Philadelphia Phillies"},
					"home": {"id": 121, "name": "New York Mets"}
				},
				"venue": {"name": "Citi Field"},
				"datetime": {"dateTime": "2025-07-04T23:10:00Z"}
			},
			"liveData": {
				"linescore": {
					"currentInning": 3,
					"isTopInning": false,
					"outs": 2,
					"teams": {
						"away": {"runs": 1, "hits": 4, "errors": 0},
						"home": {"runs": 2, "hits": 5, "errors": 1}
					},
					"innings": [
						{"away": {"runs": 0}, "home": {"runs": 1}},
						{"away": {"runs": 1}, "home": {"runs": 1}},
						{"away": {"runs": 0}, "home": {"runs": 0}}
					]
				},
				"plays": {
					"currentPlay": {
						"count": {"balls": 1, "strikes": 2, "outs": 2},
						"matchup": {
							"batter": {"fullName": "Francisco Lindor"},
							"pitcher": {"fullName": "Zack Wheeler"},
							"postOnSecond": {"id": 7}
						},
						"result": {"description": "Lindor singles.", "event": "Single"}
					}
				}
			}
		}`))
	})

	status, err := client.FetchLiveGame(context.Background(), 718781)
	require.NoError(t, err)
	require.NotNil(t, status)

	assert.Equal(t, 718781, status.GamePk)
	assert.Equal(t, "In Progress", status.Status)
	assert.Equal(t, "Bottom", status.InningHalf)
	assert.Equal(t, 1, status.AwayScore)
	assert.Equal(t, 2, status.HomeScore)
	assert.True(t, status.Runners.Second)
	assert.False(t, status.Runners.First)
	require.NotNil(t, status.Matchup)
	assert.Equal(t, "Francisco Lindor", status.Matchup.BatterName)
}

func TestFetchLiveGameNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	status, err := client.FetchLiveGame(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, status)
}

func TestSearchPlayersFiltersInactiveAndTeam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, peopleSearchPath, r.URL.Path)
		assert.Equal(t, "judge", r.URL.Query().Get("names"))
		assert.Equal(t, "currentTeam", r.URL.Query().Get("hydrate"))
		_, _ = w.Write([]byte(`{
			"people": [
				{"id": 592450, "fullName": "Aaron Judge", "active": true, "currentTeam": {"id": 147, "name": "New York Yankees"}},
				{"id": 111111, "fullName": "Retired Judge", "active": false, "currentTeam": {"id": 147}},
				{"id": 222222, "fullName": "Other Judge", "active": true, "currentTeam": {"id": 143, "name": "Philadelphia Phillies"}}
			]
		}`))
	})

	all, err := client.SearchPlayers(context.Background(), "judge", "")
	require.NoError(t, err)
	require.Len(t, all, 2, "inactive players should be dropped")

	yankees, err := client.SearchPlayers(context.Background(), "judge", "nyy")
	require.NoError(t, err)
	require.Len(t, yankees, 1)
	assert.Equal(t, 592450, yankees[0].ID)
	assert.Equal(t, "NYY", yankees[0].TeamAbbreviation)
}

func TestFetchPlayerStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/people/592450":
			assert.Equal(t, "currentTeam", r.URL.Query().Get("hydrate"))
			_, _ = w.Write([]byte(`{
				"people": [
					{"id": 592450, "fullName": "Aaron Judge", "active": true, "currentTeam": {"id": 147, "name": "New York Yankees"}}
				]
			}`))
		case "/api/v1/people/592450/stats":
			assert.Equal(t, "season", r.URL.Query().Get("stats"))
			assert.Equal(t, "2025", r.URL.Query().Get("season"))
			assert.Equal(t, "hitting,pitching", r.URL.Query().Get("group"))
			_, _ = w.Write([]byte(`{
				"stats": [
					{
						"group": {"displayName": "hitting"},
						"splits": [
							{"season": "2025", "team": {"name": "New York Yankees"}, "stat": {"homeRuns": 54, "avg": ".311"}}
						]
					}
				]
			}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	stats, err := client.FetchPlayerStats(context.Background(), 592450, 2025)
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, "Aaron Judge", stats.Player.FullName)
	require.NotNil(t, stats.Batting)
	assert.Equal(t, 54, stats.Batting.HomeRuns)
	assert.Equal(t, ".311", stats.Batting.AVG)
	assert.Nil(t, stats.Pitching)
}

func TestFetchPlayerStatsDegradesWhenStatsCallFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/people/592450":
			_, _ = w.Write([]byte(`{"people": [{"id": 592450, "fullName": "Aaron Judge", "active": true}]}`))
		default:
			http.Error(w, "stats down", http.StatusInternalServerError)
		}
	})

	stats, err := client.FetchPlayerStats(context.Background(), 592450, 2025)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Nil(t, stats.Batting)
	assert.Nil(t, stats.Pitching)
}

func TestFetchPlayerStatsEmptyProfileIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"people": []}`))
	})

	stats, err := client.FetchPlayerStats(context.Background(), 1, 2025)
	require.Error(t, err)
	assert.Nil(t, stats)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{Logger: zerolog.Nop()})
	assert.Equal(t, defaultBaseURL, client.baseURL)

	client = NewClient(Config{BaseURL: "http://localhost:8080/", Logger: zerolog.Nop()})
	assert.Equal(t, "http://localhost:8080", client.baseURL)
}
