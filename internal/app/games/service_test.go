package games

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaney64/baseball/internal/app"
	domaingames "github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/testutil"
)

var noon = time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)

func newService(provider *testutil.StubGameProvider) *Service {
	return NewService(provider, testutil.ClockAt(noon), time.UTC)
}

func TestListDefaultsToToday(t *testing.T) {
	provider := &testutil.StubGameProvider{
		Summaries: []domaingames.GameSummary{testutil.SummaryFor(1, "PHI", "NYM")},
	}

	schedule, err := newService(provider).List(context.Background(), ListOptions{})
	require.NoError(t, err)

	require.Len(t, provider.ScheduleCalls, 1)
	assert.Equal(t, "07/04/2025", provider.ScheduleCalls[0].StartDate)
	assert.Empty(t, provider.ScheduleCalls[0].EndDate)
	assert.Equal(t, "07/04/2025", schedule.DateLabel)
	assert.False(t, schedule.MultiDay)
	assert.Len(t, schedule.Games, 1)
}

func TestListRangeComputesEndDate(t *testing.T) {
	provider := &testutil.StubGameProvider{}

	schedule, err := newService(provider).List(context.Background(), ListOptions{Date: "07/04/2025", Days: 7})
	require.NoError(t, err)

	require.Len(t, provider.ScheduleCalls, 1)
	assert.Equal(t, "07/04/2025", provider.ScheduleCalls[0].StartDate)
	assert.Equal(t, "07/10/2025", provider.ScheduleCalls[0].EndDate)
	assert.Equal(t, "07/04/2025 - 07/10/2025", schedule.DateLabel)
	assert.True(t, schedule.MultiDay)
}

func TestListRejectsMalformedDate(t *testing.T) {
	provider := &testutil.StubGameProvider{}

	for _, days := range []int{1, 3} {
		_, err := newService(provider).List(context.Background(), ListOptions{Date: "2025-07-04", Days: days})
		var invalidDate *app.InvalidDateError
		require.ErrorAs(t, err, &invalidDate)
	}
	assert.Empty(t, provider.ScheduleCalls, "no fetch on malformed date")
}

func TestListFiltersByTeam(t *testing.T) {
	provider := &testutil.StubGameProvider{
		Summaries: []domaingames.GameSummary{
			testutil.SummaryFor(1, "PHI", "NYM"),
			testutil.SummaryFor(2, "BOS", "NYY"),
			testutil.SummaryFor(3, "LAD", "PHI"),
		},
	}

	schedule, err := newService(provider).List(context.Background(), ListOptions{Team: "phillies"})
	require.NoError(t, err)

	assert.Equal(t, "PHI", schedule.TeamFilter)
	require.Len(t, schedule.Games, 2)
	assert.Equal(t, 1, schedule.Games[0].GamePk)
	assert.Equal(t, 3, schedule.Games[1].GamePk)
}

func TestListUnknownTeam(t *testing.T) {
	_, err := newService(&testutil.StubGameProvider{}).List(context.Background(), ListOptions{Team: "ZZZ"})
	var unknown *app.UnknownTeamError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ZZZ", unknown.Query)
}

func TestListTreatsFetchFailureAsEmpty(t *testing.T) {
	provider := &testutil.StubGameProvider{ScheduleErr: errors.New("boom")}

	schedule, err := newService(provider).List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, schedule.Games)
}

func TestResolveGamePkNumericShortCircuits(t *testing.T) {
	provider := &testutil.StubGameProvider{}

	gamePk, err := newService(provider).ResolveGamePk(context.Background(), app.ParseRef("718781"), "")
	require.NoError(t, err)
	assert.Equal(t, 718781, gamePk)
	assert.Empty(t, provider.ScheduleCalls, "numeric refs skip the schedule lookup")
}

func TestResolveGamePkByTeam(t *testing.T) {
	provider := &testutil.StubGameProvider{
		Summaries: []domaingames.GameSummary{
			testutil.SummaryFor(100, "BOS", "NYY"),
			testutil.SummaryFor(200, "PHI", "NYM"),
			testutil.SummaryFor(300, "ATL", "PHI"),
		},
	}

	gamePk, err := newService(provider).ResolveGamePk(context.Background(), app.ParseRef("PHI"), "")
	require.NoError(t, err)
	assert.Equal(t, 200, gamePk, "first match in schedule order wins")
	require.Len(t, provider.ScheduleCalls, 1)
	assert.Equal(t, "07/04/2025", provider.ScheduleCalls[0].StartDate)
}

func TestResolveGamePkUnknownTeam(t *testing.T) {
	_, err := newService(&testutil.StubGameProvider{}).ResolveGamePk(context.Background(), app.ParseRef("ZZZ"), "")
	var unknown *app.UnknownTeamError
	require.ErrorAs(t, err, &unknown)
}

func TestResolveGamePkEmptySchedule(t *testing.T) {
	_, err := newService(&testutil.StubGameProvider{}).ResolveGamePk(context.Background(), app.ParseRef("PHI"), "07/05/2025")
	var noGames *app.NoGamesError
	require.ErrorAs(t, err, &noGames)
	assert.Equal(t, "07/05/2025", noGames.Date)
}

func TestResolveGamePkTeamNotPlaying(t *testing.T) {
	provider := &testutil.StubGameProvider{
		Summaries: []domaingames.GameSummary{testutil.SummaryFor(1, "BOS", "NYY")},
	}

	_, err := newService(provider).ResolveGamePk(context.Background(), app.ParseRef("PHI"), "")
	var notPlaying *app.NotPlayingError
	require.ErrorAs(t, err, &notPlaying)
	assert.Equal(t, "Philadelphia Phillies", notPlaying.TeamName)
	assert.Equal(t, "PHI", notPlaying.Abbreviation)
}

func TestLiveFetchesResolvedGame(t *testing.T) {
	provider := &testutil.StubGameProvider{
		Status: &domaingames.GameStatus{GamePk: 718781, Status: domaingames.StatusInProgress},
	}

	status, err := newService(provider).Live(context.Background(), app.ParseRef("718781"), "")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, []int{718781}, provider.LiveCalls)
}

func TestLiveFetchFailure(t *testing.T) {
	provider := &testutil.StubGameProvider{LiveErr: errors.New("boom")}

	_, err := newService(provider).Live(context.Background(), app.ParseRef("42"), "")
	var fetchErr *app.GameFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 42, fetchErr.GamePk)
}
