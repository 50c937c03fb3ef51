package tournament

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/hand-cricket/internal/ai"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/notifier"
	"github.com/mauv0809/hand-cricket/internal/processor"
	"github.com/mauv0809/hand-cricket/internal/scheduler"
	"github.com/mauv0809/hand-cricket/internal/standings"
)

// New validates settings, schedules the league and announces the tournament.
func New(ctx context.Context, settings Settings, deps Deps) (*Tournament, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if deps.Source == nil || deps.Metrics == nil {
		return nil, errors.New("tournament requires a random source and metrics")
	}
	if deps.Chooser == nil {
		deps.Chooser = ai.New(deps.Source)
	}
	if deps.Notifier == nil {
		deps.Notifier = notifier.NewMulti()
	}

	settings.Teams = slices.Clone(settings.Teams)
	table := standings.New(settings.Teams)
	t := &Tournament{
		id:        uuid.NewString(),
		settings:  settings,
		createdAt: time.Now(),
		src:       deps.Source,
		chooser:   deps.Chooser,
		notifier:  deps.Notifier,
		metrics:   deps.Metrics,
		table:     table,
		processor: processor.New(table),
		fixtures:  scheduler.League(settings.Teams, deps.Source),
	}
	log.Info("Tournament started", "id", t.id, "teams", len(settings.Teams), "user_team", settings.UserTeam, "overs", settings.Overs, "wickets", settings.Wickets)

	t.notify("tournament-started", func() error { return t.notifier.TournamentStarted(ctx, t.Info()) })
	t.notifyFixtures(ctx)
	t.notifyStandings(ctx)
	return t, nil
}

// advance moves past a played fixture: seeds the playoffs when the league is
// done, fills the Final from a semifinal, and crowns the champion after the
// Final. Completion is announced whether or not a champion was crowned.
func (t *Tournament) advance(ctx context.Context, f cricket.Fixture) error {
	t.current++

	var err error
	switch {
	case f.Type == cricket.League:
		t.notifyStandings(ctx)
		if t.current == len(t.fixtures) {
			t.fixtures, err = scheduler.SeedPlayoffs(t.fixtures, t.table.Ranked())
			if err != nil {
				log.Error("Failed to seed playoffs", "id", t.id, "error", err)
			}
		}
	case f.Type.IsSemifinal():
		err = scheduler.UpdateBracket(t.fixtures, f)
	case f.Type == cricket.Final:
		t.champion = f.Winner
		log.Info("Tournament complete", "id", t.id, "champion", t.champion)
	}

	t.notifyFixtures(ctx)
	if t.Completed() {
		t.notify("tournament-completed", func() error { return t.notifier.TournamentCompleted(ctx, t.id, t.champion) })
	}
	return err
}

func (t *Tournament) notify(event string, fn func() error) {
	if err := fn(); err != nil {
		log.Warn("Notification failed", "id", t.id, "event", event, "error", err)
	}
}

func (t *Tournament) notifyFixtures(ctx context.Context) {
	fixtures := t.Fixtures()
	t.notify("fixtures-changed", func() error { return t.notifier.FixturesChanged(ctx, t.id, fixtures) })
}

func (t *Tournament) notifyStandings(ctx context.Context) {
	table := t.table.Ranked()
	t.notify("standings-changed", func() error { return t.notifier.StandingsChanged(ctx, t.id, table) })
}

func (t *Tournament) emit(ctx context.Context, changes []cricket.MatchChange) {
	for _, c := range changes {
		t.notify("match-state-changed", func() error { return t.notifier.MatchStateChanged(ctx, t.id, c) })
	}
}

// next returns the fixture to be played, checking it can be played at all.
func (t *Tournament) next() (*cricket.Fixture, error) {
	if t.Completed() {
		return nil, ErrTournamentComplete
	}
	f := &t.fixtures[t.current]
	if !f.Ready() {
		return nil, fmt.Errorf("fixture %d: %w", f.ID, ErrBracketPending)
	}
	return f, nil
}
