package tournament

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/innings"
	"github.com/mauv0809/hand-cricket/internal/match"
)

// StartUserMatch opens the user's match for the next fixture and flips the
// toss.
func (t *Tournament) StartUserMatch(ctx context.Context) ([]cricket.MatchChange, error) {
	if t.match != nil {
		return nil, ErrMatchInProgress
	}
	f, err := t.next()
	if err != nil {
		return nil, err
	}
	if !f.Involves(t.settings.UserTeam) {
		return nil, fmt.Errorf("fixture %d: %w", f.ID, ErrNotUserFixture)
	}

	m, changes := match.New(match.Config{
		FixtureID: f.ID,
		UserTeam:  t.settings.UserTeam,
		Opponent:  f.Opponent(t.settings.UserTeam),
		Overs:     t.settings.Overs,
		Wickets:   t.settings.Wickets,
	}, t.src, t.chooser)
	t.match = m
	log.Info("User match started", "id", t.id, "fixture", f.ID, "opponent", f.Opponent(t.settings.UserTeam))
	t.emit(ctx, changes)
	return changes, nil
}

// DecideToss applies the user's bat or bowl choice after winning the toss.
func (t *Tournament) DecideToss(ctx context.Context, bat bool) ([]cricket.MatchChange, error) {
	if t.match == nil {
		return nil, ErrNoActiveMatch
	}
	changes, err := t.match.DecideToss(bat)
	if err != nil {
		return nil, err
	}
	t.emit(ctx, changes)
	return changes, nil
}

// PlayBall submits the user's run for the next ball. The ball that ends the
// match also records its result. The ball is already bowled at that point, so
// the result is recorded even when ctx is cancelled.
func (t *Tournament) PlayBall(ctx context.Context, run int) ([]cricket.MatchChange, error) {
	if t.match == nil {
		return nil, ErrNoActiveMatch
	}
	changes, err := t.match.Play(run)
	if err != nil {
		return nil, err
	}
	t.metrics.IncBallsBowled()
	if d := changes[0].Delivery; d != nil && d.Outcome.Wicket {
		t.metrics.IncWickets()
	}

	if t.match.Finished() {
		v, err := t.recordUserMatch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		last := &changes[len(changes)-1]
		last.Verdict = &v
	}
	t.emit(ctx, changes)
	return changes, nil
}

// recordUserMatch writes the finished match into its fixture. A level
// playoff gets one synthetic run on the first innings.
func (t *Tournament) recordUserMatch(ctx context.Context) (cricket.Verdict, error) {
	f := &t.fixtures[t.current]
	played := *f
	played.Innings1, played.Innings2 = t.match.Records()
	score1, score2 := t.match.ScoreOf(f.Team1), t.match.ScoreOf(f.Team2)

	if f.Type.IsPlayoff() && score1 == score2 {
		innings.BreakTie(&played.Innings1)
		if played.Innings1.Team == f.Team1 {
			score1++
		} else {
			score2++
		}
		log.Debug("Playoff tie broken", "fixture", f.ID, "team", played.Innings1.Team)
	}

	v, err := t.processor.Process(ctx, &played, score1, score2)
	if err != nil {
		return cricket.Verdict{}, err
	}
	*f = played
	t.metrics.IncUserMatches()
	log.Info("User match finished", "id", t.id, "fixture", f.ID, "result", v.Result)
	return v, nil
}

// ContinueOver ends an over break.
func (t *Tournament) ContinueOver(ctx context.Context) ([]cricket.MatchChange, error) {
	if t.match == nil {
		return nil, ErrNoActiveMatch
	}
	changes, err := t.match.Resume()
	if err != nil {
		return nil, err
	}
	t.emit(ctx, changes)
	return changes, nil
}

// StartSecondInnings begins the chase after the innings break.
func (t *Tournament) StartSecondInnings(ctx context.Context) ([]cricket.MatchChange, error) {
	if t.match == nil {
		return nil, ErrNoActiveMatch
	}
	changes, err := t.match.StartSecondInnings()
	if err != nil {
		return nil, err
	}
	t.emit(ctx, changes)
	return changes, nil
}

// CloseMatch discards the finished match and moves to the next fixture. A
// result that failed to record on the final ball is recorded here first; the
// fixture is never skipped unplayed.
func (t *Tournament) CloseMatch(ctx context.Context) (cricket.Fixture, error) {
	if t.match == nil {
		return cricket.Fixture{}, ErrNoActiveMatch
	}
	if !t.match.Finished() {
		return cricket.Fixture{}, fmt.Errorf("close match: %w", match.ErrInvalidPhase)
	}
	if !t.fixtures[t.current].Played {
		if _, err := t.recordUserMatch(context.WithoutCancel(ctx)); err != nil {
			return cricket.Fixture{}, fmt.Errorf("close match: %w", err)
		}
	}
	f := t.fixtures[t.current]
	t.match = nil
	return f, t.advance(ctx, f)
}
