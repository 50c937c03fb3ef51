package innings

import (
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/random"
)

// WicketChance is the probability that a scoring draw in a simulated innings
// becomes a wicket instead.
const WicketChance = 0.1

// Simulate synthesizes an AI versus AI innings. Each ball draws 0..6 with 5
// read as a dot ball, and a scoring draw turns into a wicket with
// WicketChance. The innings ends when wickets or balls run out, or when
// target is reached. Pass NoTarget for a first innings.
//
// This model is deliberately simpler than the interactive AI; fixtures
// without the user do not need adaptive play.
func Simulate(src random.Source, team string, overs, wickets, target int) cricket.InningsRecord {
	totalBalls := overs * cricket.BallsPerOver
	s := newScorer(team)

	for s.rec.Balls < totalBalls && s.rec.Wickets < wickets {
		runs := src.Intn(7)
		if runs == 5 {
			runs = 0
		}
		outcome := cricket.BallOutcome{Runs: runs}
		if src.Float64() < WicketChance && runs != 0 {
			outcome = cricket.BallOutcome{Wicket: true}
		}
		s.add(outcome)

		end := s.rec.Balls == totalBalls || s.rec.Wickets == wickets || s.rec.Score >= target
		if s.rec.Balls%cricket.BallsPerOver == 0 || end {
			s.closeOver()
		}
		if s.rec.Score >= target {
			break
		}
	}
	return s.rec
}

// BreakTie adds one synthetic run to a first innings so that a level
// playoff fixture gets a winner. The run is appended to the last over; an
// innings without overs gets one. Balls bowled are unchanged.
func BreakTie(rec *cricket.InningsRecord) {
	one := cricket.BallOutcome{Runs: 1, Synthetic: true}
	rec.Score++
	rec.Outcomes = append(rec.Outcomes, one)

	if n := len(rec.Overs); n > 0 {
		last := &rec.Overs[n-1]
		last.Score = rec.Score
		last.Outcomes = append(last.Outcomes, one)
		return
	}
	rec.Overs = append(rec.Overs, cricket.OverSummary{
		Score:    rec.Score,
		Wickets:  rec.Wickets,
		Balls:    rec.Balls,
		Outcomes: []cricket.BallOutcome{one},
	})
}
