package standings

import (
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Record(t *testing.T) {
	tests := []struct {
		name           string
		score1, score2 int
		want1, want2   cricket.StandingsEntry
	}{
		{
			name:   "team1 wins",
			score1: 30, score2: 22,
			want1: cricket.StandingsEntry{Team: "CSK", Played: 1, Won: 1, Points: 2, RunDiff: 8},
			want2: cricket.StandingsEntry{Team: "MI", Played: 1, Lost: 1, RunDiff: -8},
		},
		{
			name:   "team2 wins",
			score1: 10, score2: 11,
			want1: cricket.StandingsEntry{Team: "CSK", Played: 1, Lost: 1, RunDiff: -1},
			want2: cricket.StandingsEntry{Team: "MI", Played: 1, Won: 1, Points: 2, RunDiff: 1},
		},
		{
			name:   "tie",
			score1: 15, score2: 15,
			want1: cricket.StandingsEntry{Team: "CSK", Played: 1, Tied: 1, Points: 1},
			want2: cricket.StandingsEntry{Team: "MI", Played: 1, Tied: 1, Points: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New([]string{"CSK", "MI"})

			require.NoError(t, table.Record("CSK", "MI", tt.score1, tt.score2))

			got1, _ := table.Entry("CSK")
			got2, _ := table.Entry("MI")
			assert.Equal(t, tt.want1, got1)
			assert.Equal(t, tt.want2, got2)
			assert.Zero(t, got1.RunDiff+got2.RunDiff)
		})
	}
}

func TestTable_RecordUnknownTeam(t *testing.T) {
	table := New([]string{"CSK", "MI"})

	err := table.Record("CSK", "XYZ", 10, 5)
	assert.ErrorIs(t, err, ErrUnknownTeam)

	csk, ok := table.Entry("CSK")
	require.True(t, ok)
	assert.Equal(t, cricket.StandingsEntry{Team: "CSK"}, csk, "a rejected result changes nothing")

	_, ok = table.Entry("XYZ")
	assert.False(t, ok)
}

func TestTable_Ranked(t *testing.T) {
	table := New([]string{"A", "B", "C", "D"})
	require.NoError(t, table.Record("A", "B", 10, 20)) // B +10
	require.NoError(t, table.Record("C", "D", 30, 10)) // C +20
	require.NoError(t, table.Record("A", "D", 5, 5))   // tie

	ranked := table.Ranked()

	teams := make([]string, len(ranked))
	for i, e := range ranked {
		teams[i] = e.Team
	}
	assert.Equal(t, []string{"C", "B", "A", "D"}, teams)
	assert.Equal(t, []string{"A", "B", "C", "D"}, table.Teams())
}

func TestTable_RankedKeepsRegistrationOrderOnFullTie(t *testing.T) {
	table := New([]string{"RR", "GT", "LSG"})

	ranked := table.Ranked()

	assert.Equal(t, "RR", ranked[0].Team)
	assert.Equal(t, "GT", ranked[1].Team)
	assert.Equal(t, "LSG", ranked[2].Team)
}
