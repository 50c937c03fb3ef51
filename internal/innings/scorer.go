package innings

import "github.com/mauv0809/hand-cricket/internal/cricket"

// NoTarget marks a first innings, which only ends on balls or wickets.
const NoTarget = int(^uint(0) >> 1)

// scorer accumulates an innings record and cuts it into over summaries.
type scorer struct {
	rec       cricket.InningsRecord
	overStart int
}

func newScorer(team string) scorer {
	return scorer{rec: cricket.InningsRecord{
		Team:     team,
		Outcomes: []cricket.BallOutcome{},
		Overs:    []cricket.OverSummary{},
	}}
}

func (s *scorer) add(o cricket.BallOutcome) {
	s.rec.Outcomes = append(s.rec.Outcomes, o)
	s.rec.Balls++
	if o.Wicket {
		s.rec.Wickets++
		return
	}
	s.rec.Score += o.Runs
}

func (s *scorer) closeOver() {
	over := make([]cricket.BallOutcome, len(s.rec.Outcomes)-s.overStart)
	copy(over, s.rec.Outcomes[s.overStart:])
	s.rec.Overs = append(s.rec.Overs, cricket.OverSummary{
		Score:    s.rec.Score,
		Wickets:  s.rec.Wickets,
		Balls:    s.rec.Balls,
		Outcomes: over,
	})
	s.overStart = len(s.rec.Outcomes)
}

// snapshot returns a copy that shares no slices with the scorer.
func (s *scorer) snapshot() cricket.InningsRecord {
	return Clone(s.rec)
}

// Clone deep-copies an innings record.
func Clone(rec cricket.InningsRecord) cricket.InningsRecord {
	out := rec
	out.Outcomes = append([]cricket.BallOutcome{}, rec.Outcomes...)
	out.Overs = make([]cricket.OverSummary, len(rec.Overs))
	for i, over := range rec.Overs {
		over.Outcomes = append([]cricket.BallOutcome{}, over.Outcomes...)
		out.Overs[i] = over
	}
	return out
}
