package ball

import (
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		batting int
		bowling int
		want    cricket.BallOutcome
	}{
		{name: "equal fours is a wicket", batting: 4, bowling: 4, want: cricket.BallOutcome{Wicket: true}},
		{name: "equal zeros is a wicket", batting: 0, bowling: 0, want: cricket.BallOutcome{Wicket: true}},
		{name: "batter scores own value", batting: 6, bowling: 2, want: cricket.BallOutcome{Runs: 6}},
		{name: "bowler value is ignored", batting: 1, bowling: 6, want: cricket.BallOutcome{Runs: 1}},
		{name: "dot ball", batting: 0, bowling: 3, want: cricket.BallOutcome{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.batting, tt.bowling))
		})
	}
}

func TestValid(t *testing.T) {
	for _, run := range []int{0, 1, 2, 3, 4, 6} {
		assert.True(t, Valid(run), "run %d", run)
	}
	for _, run := range []int{-1, 5, 7, 12} {
		assert.False(t, Valid(run), "run %d", run)
	}
}

func TestHistory_EvictsOldest(t *testing.T) {
	var h History
	for _, run := range []int{1, 2, 3, 4, 6, 0} {
		h.Push(run)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 6, 0}, h.Values())

	h.Push(4)
	assert.Equal(t, 6, h.Len())
	assert.Equal(t, []int{2, 3, 4, 6, 0, 4}, h.Values())

	vals := h.Values()
	vals[0] = 99
	assert.Equal(t, 2, h.Values()[0], "Values returns a copy")
}

func TestTracker_RecordsByRole(t *testing.T) {
	var tr Tracker
	tr.Record(true, 6)
	tr.Record(false, 2)
	tr.Record(true, 4)

	assert.Equal(t, []int{6, 4}, tr.Recent(true))
	assert.Equal(t, []int{2}, tr.Recent(false))
}
