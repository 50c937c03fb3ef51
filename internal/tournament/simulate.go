package tournament

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/innings"
)

// Step simulates the next fixture. It refuses a fixture the user plays in.
// The played fixture is returned even when advancing past it fails.
func (t *Tournament) Step(ctx context.Context) (cricket.Fixture, error) {
	if err := ctx.Err(); err != nil {
		return cricket.Fixture{}, err
	}
	if t.match != nil {
		return cricket.Fixture{}, ErrMatchInProgress
	}
	f, err := t.next()
	if err != nil {
		return cricket.Fixture{}, err
	}
	if f.Involves(t.settings.UserTeam) {
		return cricket.Fixture{}, fmt.Errorf("fixture %d: %w", f.ID, ErrPrematureAdvance)
	}

	start := time.Now()
	played := *f
	played.Innings1 = innings.Simulate(t.src, f.Team1, t.settings.Overs, t.settings.Wickets, innings.NoTarget)
	played.Innings2 = innings.Simulate(t.src, f.Team2, t.settings.Overs, t.settings.Wickets, played.Innings1.Score+1)
	if f.Type.IsPlayoff() && played.Innings1.Score == played.Innings2.Score {
		innings.BreakTie(&played.Innings1)
		log.Debug("Playoff tie broken", "fixture", f.ID, "team", f.Team1)
	}

	if _, err := t.processor.Process(ctx, &played, played.Innings1.Score, played.Innings2.Score); err != nil {
		return cricket.Fixture{}, err
	}
	*f = played
	t.metrics.IncFixturesSimulated()
	t.metrics.ObserveSimulationDuration(time.Since(start).Seconds())
	log.Info("Fixture simulated", "id", t.id, "fixture", f.ID, "type", f.Type, "result", f.Result)

	return played, t.advance(ctx, played)
}

// Steps simulates fixtures in order until the next one involves the user or
// the tournament is complete. Iteration stops after the first error.
func (t *Tournament) Steps(ctx context.Context) iter.Seq2[cricket.Fixture, error] {
	return func(yield func(cricket.Fixture, error) bool) {
		for t.match == nil && !t.Completed() && !t.AtUserFixture() {
			f, err := t.Step(ctx)
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}
