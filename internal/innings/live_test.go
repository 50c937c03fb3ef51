package innings

import (
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bowlN(t *testing.T, l *Live, n int, o cricket.BallOutcome) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, l.Bowl(o))
	}
}

func TestLive(t *testing.T) {
	t.Run("pauses after a full over that does not end the innings", func(t *testing.T) {
		l := NewLive(1, "CSK", 2, 3, NoTarget)

		bowlN(t, l, 5, cricket.BallOutcome{Runs: 1})
		assert.Equal(t, Active, l.Phase())
		assert.Equal(t, 5, l.BallInOver())

		require.NoError(t, l.Bowl(cricket.BallOutcome{Runs: 2}))
		assert.Equal(t, OverBreak, l.Phase())
		assert.Equal(t, 0, l.BallInOver())
		assert.Equal(t, 6, l.BallsLeft())
		require.Len(t, l.Record().Overs, 1)
		assert.Equal(t, 7, l.Record().Overs[0].Score)

		assert.ErrorIs(t, l.Bowl(cricket.BallOutcome{Runs: 1}), ErrNotActive)
		assert.Equal(t, 7, l.Score(), "a rejected ball changes nothing")

		require.NoError(t, l.Resume())
		assert.Equal(t, Active, l.Phase())
		assert.ErrorIs(t, l.Resume(), ErrNotInOverBreak)
	})

	t.Run("completes on the last ball without an over break", func(t *testing.T) {
		l := NewLive(1, "MI", 1, 3, NoTarget)

		bowlN(t, l, 6, cricket.BallOutcome{Runs: 4})

		assert.Equal(t, Complete, l.Phase())
		assert.Equal(t, 24, l.Score())
		assert.Equal(t, 0, l.BallsLeft())
		assert.Len(t, l.Record().Overs, 1)
		assert.ErrorIs(t, l.Bowl(cricket.BallOutcome{}), ErrNotActive)
	})

	t.Run("completes when wickets run out mid over", func(t *testing.T) {
		l := NewLive(1, "RCB", 2, 2, NoTarget)

		bowlN(t, l, 2, cricket.BallOutcome{Wicket: true})

		assert.Equal(t, Complete, l.Phase())
		assert.Equal(t, 0, l.WicketsLeft())
		require.Len(t, l.Record().Overs, 1)
		assert.Equal(t, 2, l.Record().Overs[0].Balls)
	})

	t.Run("a chase completes once the target is reached", func(t *testing.T) {
		l := NewLive(2, "DC", 2, 3, 8)
		assert.Equal(t, 8, l.Target())

		bowlN(t, l, 1, cricket.BallOutcome{Runs: 6})
		assert.Equal(t, Active, l.Phase())
		bowlN(t, l, 1, cricket.BallOutcome{Runs: 2})

		assert.Equal(t, Complete, l.Phase())
		assert.Equal(t, 2, l.Number())
	})

	t.Run("first innings reports no target", func(t *testing.T) {
		l := NewLive(1, "GT", 2, 3, NoTarget)
		assert.Equal(t, 0, l.Target())
		assert.Equal(t, "GT", l.Team())
		assert.Equal(t, Phase(Active).String(), "active")
	})
}
