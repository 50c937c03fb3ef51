package processor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
)

// New creates a new Processor recording league results in store.
func New(store Store) *Processor {
	return &Processor{store: store}
}

// Decide compares two final scores. It has no side effects.
func Decide(team1, team2 string, score1, score2 int) cricket.Verdict {
	switch {
	case score1 > score2:
		return cricket.Verdict{
			Winner: team1,
			Margin: score1 - score2,
			Result: fmt.Sprintf("%s won by %d runs (%d-%d)", team1, score1-score2, score1, score2),
		}
	case score2 > score1:
		return cricket.Verdict{
			Winner: team2,
			Margin: score2 - score1,
			Result: fmt.Sprintf("%s won by %d runs (%d-%d)", team2, score2-score1, score1, score2),
		}
	default:
		return cricket.Verdict{Tie: true, Result: fmt.Sprintf("Tie (%d-%d)", score1, score2)}
	}
}

// Process applies a fixture's result. score1 and score2 belong to Team1 and
// Team2. League results update the standings; playoff results set the
// fixture's winner and never touch them. Nothing is written when a check
// fails.
func (p *Processor) Process(ctx context.Context, f *cricket.Fixture, score1, score2 int) (cricket.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return cricket.Verdict{}, err
	}
	if f.Played {
		return cricket.Verdict{}, fmt.Errorf("fixture %d: %w", f.ID, ErrAlreadyPlayed)
	}

	v := Decide(f.Team1, f.Team2, score1, score2)
	if f.Type.IsPlayoff() {
		if v.Tie {
			return cricket.Verdict{}, fmt.Errorf("fixture %d: %w", f.ID, ErrPlayoffTie)
		}
		f.Winner = v.Winner
	} else if err := p.store.Record(f.Team1, f.Team2, score1, score2); err != nil {
		return cricket.Verdict{}, fmt.Errorf("failed to record fixture %d: %w", f.ID, err)
	}

	f.Played = true
	f.Result = v.Result
	log.Info("Fixture processed", "fixture", f.ID, "type", f.Type, "result", v.Result)
	return v, nil
}
