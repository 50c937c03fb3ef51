package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/hand-cricket/internal/archive"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/database"
	"github.com/mauv0809/hand-cricket/internal/innings"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (archive.ArchiveStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return archive.New(db, metrics.NewTallyStore(db)), teardown
}

func startTournament(t *testing.T, store archive.ArchiveStore, id string) {
	t.Helper()
	err := store.TournamentStarted(context.Background(), cricket.TournamentInfo{
		ID:        id,
		Teams:     []string{"CSK", "MI", "RCB", "KKR"},
		Overs:     2,
		Wickets:   3,
		UserTeam:  "CSK",
		CreatedAt: time.Unix(1700000000, 0),
	})
	require.NoError(t, err)
}

func TestTournamentStarted(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	startTournament(t, store, "t1")
	startTournament(t, store, "t1") // idempotent

	sum, err := store.GetTournament("t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"CSK", "MI", "RCB", "KKR"}, sum.Teams)
	assert.Equal(t, "CSK", sum.UserTeam)
	assert.Equal(t, 2, sum.Overs)
	assert.Nil(t, sum.CompletedAt)

	_, err = store.GetTournament("missing")
	assert.ErrorIs(t, err, archive.ErrNotFound)
}

func TestFixturesChanged_RoundTripsInnings(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	startTournament(t, store, "t1")

	first := innings.Simulate(random.New(3), "CSK", 2, 3, innings.NoTarget)
	second := innings.Simulate(random.New(4), "MI", 2, 3, first.Score+1)
	fixtures := []cricket.Fixture{
		{ID: 0, Team1: "CSK", Team2: "MI", Type: cricket.League, Played: true, Result: "done", Innings1: first, Innings2: second},
		{ID: 1, Team1: "RCB", Team2: "KKR", Type: cricket.League},
	}
	require.NoError(t, store.FixturesChanged(ctx, "t1", fixtures))

	// Upsert replaces an existing row.
	fixtures[1].Played = true
	fixtures[1].Result = "Tie (0-0)"
	require.NoError(t, store.FixturesChanged(ctx, "t1", fixtures))

	got, err := store.GetFixtures("t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].Innings1)
	assert.Equal(t, second, got[0].Innings2)
	assert.True(t, got[1].Played)
	assert.Equal(t, "Tie (0-0)", got[1].Result)
	assert.Equal(t, cricket.League, got[1].Type)

	_, err = store.GetFixtures("missing")
	assert.ErrorIs(t, err, archive.ErrNotFound)
}

func TestStandingsChanged_KeepsRankOrder(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	startTournament(t, store, "t1")

	table := []cricket.StandingsEntry{
		{Team: "MI", Played: 1, Won: 1, Points: 2, RunDiff: 5},
		{Team: "CSK", Played: 1, Lost: 1, RunDiff: -5},
	}
	require.NoError(t, store.StandingsChanged(ctx, "t1", table))
	table[0], table[1] = table[1], table[0]
	table[0].Points = 4
	require.NoError(t, store.StandingsChanged(ctx, "t1", table))

	got, err := store.GetStandings("t1")
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestTournamentCompleted_TalliesTitles(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	startTournament(t, store, "t1")
	startTournament(t, store, "t2")

	require.NoError(t, store.TournamentCompleted(ctx, "t1", "MI"))
	require.NoError(t, store.TournamentCompleted(ctx, "t2", "MI"))
	assert.ErrorIs(t, store.TournamentCompleted(ctx, "t3", "CSK"), archive.ErrNotFound)

	sum, err := store.GetTournament("t1")
	require.NoError(t, err)
	assert.Equal(t, "MI", sum.Champion)
	assert.NotNil(t, sum.CompletedAt)

	titles, err := store.GetTitles()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"MI": 2}, titles)
}

func TestTournamentCompleted_WithoutChampion(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	startTournament(t, store, "t1")

	require.NoError(t, store.TournamentCompleted(ctx, "t1", ""))

	sum, err := store.GetTournament("t1")
	require.NoError(t, err)
	assert.Empty(t, sum.Champion)
	assert.NotNil(t, sum.CompletedAt)

	titles, err := store.GetTitles()
	require.NoError(t, err)
	assert.Empty(t, titles)
}
