package tournament

import (
	"context"

	"github.com/mauv0809/hand-cricket/internal/ai"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/match"
)

// Autoplay drives the rest of the tournament with pilot choosing the user's
// runs. The user bats first whenever they win the toss.
func (t *Tournament) Autoplay(ctx context.Context, pilot match.Chooser) error {
	for !t.Completed() {
		for _, err := range t.Steps(ctx) {
			if err != nil {
				return err
			}
		}
		if t.Completed() {
			return nil
		}
		if err := t.autoplayMatch(ctx, pilot); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tournament) autoplayMatch(ctx context.Context, pilot match.Chooser) error {
	if t.match == nil {
		if _, err := t.StartUserMatch(ctx); err != nil {
			return err
		}
	}
	for {
		state := t.match.Snapshot()
		var err error
		switch state.Phase {
		case cricket.PhaseAwaitingToss:
			_, err = t.DecideToss(ctx, true)
		case cricket.PhaseInPlay:
			// The pilot plays the user's side: it bats when the user bats.
			role := ai.Bowling
			if state.UserBatting {
				role = ai.Batting
			}
			run := pilot.ChooseRun(role, ai.Situation{
				Innings:   state.Innings,
				Score:     state.Score,
				Target:    state.Target,
				BallsLeft: state.BallsLeft,
			}, nil)
			_, err = t.PlayBall(ctx, run)
		case cricket.PhaseOverBreak:
			_, err = t.ContinueOver(ctx)
		case cricket.PhaseInningsBreak:
			_, err = t.StartSecondInnings(ctx)
		case cricket.PhaseMatchFinished:
			_, err = t.CloseMatch(ctx)
			return err
		}
		if err != nil {
			return err
		}
	}
}
