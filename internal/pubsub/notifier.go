package pubsub

import (
	"context"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/notifier"
)

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier publishes engine events to one topic per EventType.
type Notifier struct {
	client  PubSubClient
	metrics metrics.Metrics
}

// NewNotifier creates a Notifier publishing through client.
func NewNotifier(client PubSubClient, metrics metrics.Metrics) *Notifier {
	return &Notifier{client: client, metrics: metrics}
}

func (n *Notifier) publish(ctx context.Context, topic EventType, data any) error {
	if err := n.client.SendMessage(ctx, topic, data); err != nil {
		n.metrics.IncNotifFailed()
		return err
	}
	n.metrics.IncNotifSent()
	return nil
}

func (n *Notifier) TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error {
	return n.publish(ctx, EventTournamentStarted, info)
}

func (n *Notifier) FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error {
	return n.publish(ctx, EventFixturesChanged, FixturesMessage{TournamentID: tournamentID, Fixtures: fixtures})
}

func (n *Notifier) StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error {
	return n.publish(ctx, EventStandingsChanged, StandingsMessage{TournamentID: tournamentID, Standings: table})
}

func (n *Notifier) MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error {
	return n.publish(ctx, EventMatchStateChanged, MatchMessage{TournamentID: tournamentID, Change: change})
}

func (n *Notifier) TournamentCompleted(ctx context.Context, tournamentID string, champion string) error {
	return n.publish(ctx, EventTournamentCompleted, CompletedMessage{TournamentID: tournamentID, Champion: champion})
}
