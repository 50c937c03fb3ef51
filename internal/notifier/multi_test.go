package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulti(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers every event to every notifier", func(t *testing.T) {
		a, b := NewMock(), NewMock()
		m := NewMulti(a, nil, b)

		require.NoError(t, m.TournamentStarted(ctx, cricket.TournamentInfo{ID: "t1"}))
		require.NoError(t, m.FixturesChanged(ctx, "t1", []cricket.Fixture{{ID: 0}}))
		require.NoError(t, m.StandingsChanged(ctx, "t1", []cricket.StandingsEntry{{Team: "CSK"}}))
		require.NoError(t, m.MatchStateChanged(ctx, "t1", cricket.MatchChange{Kind: cricket.ChangeBall}))
		require.NoError(t, m.TournamentCompleted(ctx, "t1", "CSK"))

		for _, n := range []*Mock{a, b} {
			assert.Len(t, n.TournamentStartedCalls, 1)
			assert.Len(t, n.FixturesChangedCalls, 1)
			assert.Len(t, n.StandingsChangedCalls, 1)
			assert.Equal(t, []cricket.ChangeKind{cricket.ChangeBall}, n.ChangeKinds())
			assert.Equal(t, []string{"CSK"}, n.TournamentCompletedCalls)
		}
	})

	t.Run("a failing notifier does not block the others", func(t *testing.T) {
		boom := errors.New("boom")
		failing, ok := NewMock(), NewMock()
		failing.Err = boom
		m := NewMulti(failing)
		m.Add(ok)

		err := m.TournamentCompleted(ctx, "t1", "MI")

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"MI"}, ok.TournamentCompletedCalls)
	})
}
