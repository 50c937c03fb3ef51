package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
)

var _ Notifier = (*Multi)(nil)

// Multi fans every event out to a list of notifiers. A failing notifier is
// logged and does not stop delivery to the rest; all failures are returned
// joined.
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a fan-out over notifiers. Nil entries are skipped.
func NewMulti(notifiers ...Notifier) *Multi {
	m := &Multi{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Add appends a notifier.
func (m *Multi) Add(n Notifier) {
	m.notifiers = append(m.notifiers, n)
}

func (m *Multi) each(event string, fn func(Notifier) error) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := fn(n); err != nil {
			log.Error("Notifier failed", "event", event, "notifier", fmt.Sprintf("%T", n), "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error {
	return m.each("tournament-started", func(n Notifier) error { return n.TournamentStarted(ctx, info) })
}

func (m *Multi) FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error {
	return m.each("fixtures-changed", func(n Notifier) error { return n.FixturesChanged(ctx, tournamentID, fixtures) })
}

func (m *Multi) StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error {
	return m.each("standings-changed", func(n Notifier) error { return n.StandingsChanged(ctx, tournamentID, table) })
}

func (m *Multi) MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error {
	return m.each("match-state-changed", func(n Notifier) error { return n.MatchStateChanged(ctx, tournamentID, change) })
}

func (m *Multi) TournamentCompleted(ctx context.Context, tournamentID string, champion string) error {
	return m.each("tournament-completed", func(n Notifier) error { return n.TournamentCompleted(ctx, tournamentID, champion) })
}
