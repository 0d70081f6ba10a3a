package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/domain/players"
	"github.com/khaney64/baseball/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Location   *time.Location
	Logger     zerolog.Logger
}

// Client fetches schedules, live feeds, and player data from the MLB Stats
// API and maps them to domain models. Transport, status, and decode
// failures are logged here and surface as plain errors that callers treat
// uniformly as "nothing found".
type Client struct {
	baseURL    string
	httpClient httpDoer
	loc        *time.Location
	logger     zerolog.Logger
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		loc:        loc,
		logger:     cfg.Logger,
	}
}

// FetchSchedule retrieves schedule entries for a date (MM/DD/YYYY) or an
// inclusive range when endDate is non-empty. Zero returned dates yield an
// empty slice.
func (c *Client) FetchSchedule(ctx context.Context, startDate, endDate string) ([]games.GameSummary, error) {
	q := url.Values{}
	q.Set("sportId", sportID)
	if endDate != "" {
		q.Set("startDate", startDate)
		q.Set("endDate", endDate)
	} else {
		q.Set("date", startDate)
	}

	var payload scheduleResponse
	if err := c.getJSON(ctx, c.baseURL+schedulePath+"?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	summaries := make([]games.GameSummary, 0)
	for _, date := range payload.Dates {
		for _, game := range date.Games {
			summaries = append(summaries, mapGameSummary(date.Date, game, c.loc))
		}
	}
	return summaries, nil
}

// FetchLiveGame retrieves the detailed live feed for one game.
func (c *Client) FetchLiveGame(ctx context.Context, gamePk int) (*games.GameStatus, error) {
	var payload liveFeedResponse
	if err := c.getJSON(ctx, c.baseURL+fmt.Sprintf(liveFeedPath, gamePk), &payload); err != nil {
		return nil, err
	}
	status := mapGameStatus(gamePk, payload, c.loc)
	return &status, nil
}

// SearchPlayers searches active players by free-text name, optionally
// filtered to a team abbreviation (case-insensitive).
func (c *Client) SearchPlayers(ctx context.Context, name, teamAbbr string) ([]players.PlayerInfo, error) {
	q := url.Values{}
	q.Set("names", name)
	q.Set("hydrate", "currentTeam")

	var payload peopleResponse
	if err := c.getJSON(ctx, c.baseURL+peopleSearchPath+"?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	matches := make([]players.PlayerInfo, 0, len(payload.People))
	for _, row := range payload.People {
		if !row.Active {
			continue
		}
		player := mapPlayer(row)
		if teamAbbr != "" && !strings.EqualFold(player.TeamAbbreviation, teamAbbr) {
			continue
		}
		matches = append(matches, player)
	}
	return matches, nil
}

// FetchPlayerStats retrieves a player profile plus season batting and
// pitching lines. A failed stats call degrades to a profile-only result;
// a failed profile call is an error.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID, season int) (*players.PlayerStats, error) {
	profileURL := c.baseURL + fmt.Sprintf(peoplePath, playerID) + "?hydrate=currentTeam"
	var profile peopleResponse
	if err := c.getJSON(ctx, profileURL, &profile); err != nil {
		return nil, err
	}
	if len(profile.People) == 0 {
		c.logger.Warn().Int(logging.FieldPlayerID, playerID).Msg("player profile empty")
		return nil, fmt.Errorf("statsapi: no profile for player %d", playerID)
	}

	result := &players.PlayerStats{Player: mapPlayer(profile.People[0])}

	q := url.Values{}
	q.Set("stats", "season")
	q.Set("season", strconv.Itoa(season))
	q.Set("group", "hitting,pitching")
	statsURL := c.baseURL + fmt.Sprintf(peopleStatsPath, playerID) + "?" + q.Encode()

	var stats statsResponse
	if err := c.getJSON(ctx, statsURL, &stats); err == nil {
		result.Batting, result.Pitching = mapSeasonStats(stats)
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Str(logging.FieldURL, rawURL).Err(err).Msg("statsapi request failed")
		return fmt.Errorf("statsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn().
			Str(logging.FieldURL, rawURL).
			Int(logging.FieldStatusCode, resp.StatusCode).
			Str("body", strings.TrimSpace(string(snippet))).
			Msg("statsapi unexpected status")
		return fmt.Errorf("statsapi: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.logger.Warn().Str(logging.FieldURL, rawURL).Err(err).Msg("statsapi invalid JSON")
		return fmt.Errorf("statsapi: invalid JSON: %w", err)
	}
	return nil
}
