package notifier

import (
	"context"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

// Notifier receives engine events for presentation and archiving.
// This decouples the engine from the specific sinks (Slack, Pub/Sub, the
// archive, websocket clients).
type Notifier interface {
	TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error
	// FixturesChanged carries the full schedule after any fixture changed.
	FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error
	// StandingsChanged carries the ranked table.
	StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error
	MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error
	TournamentCompleted(ctx context.Context, tournamentID string, champion string) error
}
