package scheduler

import (
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roster = []string{"CSK", "RCB", "MI", "KKR", "DC", "RR", "SRH", "PBKS", "LSG", "GT"}

func TestLeague(t *testing.T) {
	for n := 2; n <= len(roster); n++ {
		teams := roster[:n]
		fixtures := League(teams, random.New(int64(n)))

		require.Len(t, fixtures, n*(n-1)/2)
		appearances := map[string]int{}
		pairs := map[[2]string]bool{}
		for i, f := range fixtures {
			assert.Equal(t, i, f.ID)
			assert.Equal(t, cricket.League, f.Type)
			assert.NotEqual(t, f.Team1, f.Team2)
			appearances[f.Team1]++
			appearances[f.Team2]++
			key := [2]string{f.Team1, f.Team2}
			if f.Team1 > f.Team2 {
				key = [2]string{f.Team2, f.Team1}
			}
			assert.False(t, pairs[key], "pairing %v scheduled twice", key)
			pairs[key] = true
		}
		for _, team := range teams {
			assert.Equal(t, n-1, appearances[team], "team %s with %d teams", team, n)
		}
	}
}

func TestLeague_ShufflesWithSource(t *testing.T) {
	src := random.NewSequence(nil, nil)

	fixtures := League([]string{"A", "B", "C"}, src)

	// Pairings start as AB, AC, BC; swapping index 2 then 1 with 0 gives AC, BC, AB.
	assert.Equal(t, []int{3, 2}, src.IntnCalls)
	assert.Equal(t, "A", fixtures[0].Team1)
	assert.Equal(t, "C", fixtures[0].Team2)
	assert.Equal(t, "B", fixtures[1].Team1)
	assert.Equal(t, "C", fixtures[1].Team2)
	assert.Equal(t, "A", fixtures[2].Team1)
	assert.Equal(t, "B", fixtures[2].Team2)
}

func ranked(teams ...string) []cricket.StandingsEntry {
	out := make([]cricket.StandingsEntry, len(teams))
	for i, team := range teams {
		out[i] = cricket.StandingsEntry{Team: team}
	}
	return out
}

func TestSeedPlayoffs(t *testing.T) {
	t.Run("seeds 1v4 and 2v3 with a pending final", func(t *testing.T) {
		league := League(roster, random.New(1))

		fixtures, err := SeedPlayoffs(league, ranked("MI", "CSK", "GT", "RR", "DC"))
		require.NoError(t, err)

		require.Len(t, fixtures, 48)
		sfA, sfB, final := fixtures[45], fixtures[46], fixtures[47]
		assert.Equal(t, cricket.Fixture{ID: 45, Team1: "MI", Team2: "RR", Type: cricket.SemifinalA}, sfA)
		assert.Equal(t, cricket.Fixture{ID: 46, Team1: "CSK", Team2: "GT", Type: cricket.SemifinalB}, sfB)
		assert.Equal(t, cricket.Fixture{ID: 47, Team1: cricket.TBD, Team2: cricket.TBD, Type: cricket.Final}, final)
		assert.False(t, final.Ready())

		_, err = SeedPlayoffs(fixtures, ranked("MI", "CSK", "GT", "RR"))
		assert.ErrorIs(t, err, ErrAlreadySeeded)
	})

	t.Run("fewer than four ranked teams is an error", func(t *testing.T) {
		league := League([]string{"A", "B", "C"}, random.New(1))

		fixtures, err := SeedPlayoffs(league, ranked("A", "B", "C"))

		assert.ErrorIs(t, err, ErrInsufficientTeams)
		assert.Len(t, fixtures, 3)
	})
}

func TestUpdateBracket(t *testing.T) {
	fixtures, err := SeedPlayoffs(nil, ranked("A", "B", "C", "D"))
	require.NoError(t, err)
	sfA, sfB := fixtures[0], fixtures[1]

	assert.ErrorIs(t, UpdateBracket(fixtures, sfA), ErrNotSemifinal, "unplayed semifinal")
	assert.ErrorIs(t, UpdateBracket(fixtures, fixtures[2]), ErrNotSemifinal, "the final itself")

	sfB.Played, sfB.Winner = true, "C"
	require.NoError(t, UpdateBracket(fixtures, sfB))
	assert.Equal(t, cricket.TBD, fixtures[2].Team1)
	assert.Equal(t, "C", fixtures[2].Team2)
	assert.False(t, fixtures[2].Ready())

	sfA.Played, sfA.Winner = true, "A"
	require.NoError(t, UpdateBracket(fixtures, sfA))
	assert.Equal(t, "A", fixtures[2].Team1)
	assert.True(t, fixtures[2].Ready())

	assert.ErrorIs(t, UpdateBracket(fixtures[:2], sfA), ErrNoFinal)
}
