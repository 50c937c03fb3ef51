package pubsub

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishesPerTopic(t *testing.T) {
	ctx := context.Background()
	client := NewMock()
	metr := metrics.NewMock()
	n := NewNotifier(client, metr)

	fixtures := []cricket.Fixture{{
		ID: 3, Team1: "CSK", Team2: "MI", Type: cricket.League, Played: true,
		Result:   "CSK won by 4 runs (20-16)",
		Innings1: cricket.InningsRecord{Team: "CSK", Score: 20, Balls: 12},
	}}
	require.NoError(t, n.FixturesChanged(ctx, "t1", fixtures))
	require.NoError(t, n.TournamentCompleted(ctx, "t1", "CSK"))

	require.Len(t, client.SendMessageCalls, 2)
	assert.Equal(t, EventFixturesChanged, client.SendMessageCalls[0].Topic)
	assert.Equal(t, EventTournamentCompleted, client.SendMessageCalls[1].Topic)
	assert.Equal(t, 2, metr.NotifSent())

	var decoded FixturesMessage
	require.NoError(t, client.ProcessMessage(client.SendMessageCalls[0].Encoded, &decoded))
	assert.Equal(t, "t1", decoded.TournamentID)
	require.Len(t, decoded.Fixtures, 1)
	assert.Equal(t, "CSK won by 4 runs (20-16)", decoded.Fixtures[0].Result)
	assert.Equal(t, 20, decoded.Fixtures[0].Innings1.Score)

	var completed CompletedMessage
	require.NoError(t, Decode(client.SendMessageCalls[1].Encoded, &completed))
	assert.Equal(t, CompletedMessage{TournamentID: "t1", Champion: "CSK"}, completed)
}

func TestNotifier_CountsFailures(t *testing.T) {
	client := NewMock()
	boom := errors.New("publish failed")
	client.SendMessageFunc = func(EventType, any) error { return boom }
	metr := metrics.NewMock()
	n := NewNotifier(client, metr)

	err := n.MatchStateChanged(context.Background(), "t1", cricket.MatchChange{Kind: cricket.ChangeBall})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, metr.NotifSent())
	assert.Equal(t, 1, metr.NotifFailed())
}
