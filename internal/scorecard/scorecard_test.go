package scorecard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	testCases := []struct {
		name    string
		outcome cricket.BallOutcome
		want    string
	}{
		{name: "dot", outcome: cricket.BallOutcome{Runs: 0}, want: "Good defense."},
		{name: "boundary", outcome: cricket.BallOutcome{Runs: 4}, want: "SMASHED! 4 runs."},
		{name: "six", outcome: cricket.BallOutcome{Runs: 6}, want: "HUGE! It's a SIX!"},
		{name: "wicket", outcome: cricket.BallOutcome{Wicket: true}, want: "OUT! Clean bowled!"},
		{name: "synthetic", outcome: cricket.BallOutcome{Runs: 1, Synthetic: true}, want: ""},
		{name: "five is never bowled", outcome: cricket.BallOutcome{Runs: 5}, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Line(random.NewSequence(nil, nil), tc.outcome))
		})
	}
}

func TestLine_DrawsWithinLines(t *testing.T) {
	src := random.NewSequence([]int{3}, nil)

	line := Line(src, cricket.BallOutcome{Runs: 2})

	assert.Equal(t, "Couple of runs.", line)
	assert.Equal(t, []int{3}, src.IntnCalls)
}

func TestBall(t *testing.T) {
	d := cricket.Delivery{Batter: "CSK", BatterChoice: 4, BowlerChoice: 2, Outcome: cricket.BallOutcome{Runs: 4}}

	got := Ball(random.NewSequence([]int{1}, nil), d)

	assert.Equal(t, "CSK scored 4 (Played 4, Bowled 2) - Beautiful cover drive!", got)
}

func TestOvers(t *testing.T) {
	assert.Equal(t, "0.0", Overs(0))
	assert.Equal(t, "0.5", Overs(5))
	assert.Equal(t, "1.0", Overs(6))
	assert.Equal(t, "2.2", Overs(14))
}

func TestWriteInnings(t *testing.T) {
	// Setup
	rec := cricket.InningsRecord{
		Team: "MI", Score: 11, Wickets: 1, Balls: 8,
		Overs: []cricket.OverSummary{
			{Score: 9, Wickets: 1, Balls: 6, Outcomes: []cricket.BallOutcome{{Runs: 4}, {Runs: 1}, {Wicket: true}, {Runs: 0}, {Runs: 2}, {Runs: 2}}},
			{Score: 11, Wickets: 1, Balls: 8, Outcomes: []cricket.BallOutcome{{Runs: 1}, {Runs: 1, Synthetic: true}}},
		},
	}
	var buf bytes.Buffer

	// Execute
	require.NoError(t, WriteInnings(&buf, rec))

	// Assert
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "MI 11/1 (1.2)", lines[0])
	assert.Contains(t, lines[1], "4 1 W 0 2 2")
	assert.Contains(t, lines[1], "9/1 after 1.0")
	assert.Contains(t, lines[2], "1 1*")
	assert.Contains(t, lines[2], "11/1 after 1.2")
}

func TestWriteTable(t *testing.T) {
	table := []cricket.StandingsEntry{
		{Team: "CSK", Played: 3, Won: 2, Lost: 1, Points: 4, RunDiff: 12},
		{Team: "MI", Played: 3, Won: 1, Lost: 2, Points: 2, RunDiff: -12},
	}
	var buf bytes.Buffer

	require.NoError(t, WriteTable(&buf, table))

	out := buf.String()
	assert.Contains(t, out, "Team")
	assert.Contains(t, out, "1   CSK    3  2  1  0   4   +12")
	assert.Contains(t, out, "2   MI     3  1  2  0   2   -12")
}
