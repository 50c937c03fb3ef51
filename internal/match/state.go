package match

import (
	"github.com/mauv0809/hand-cricket/internal/cricket"
)

// Snapshot returns the current match state.
func (m *Match) Snapshot() cricket.MatchState {
	s := cricket.MatchState{
		FixtureID:     m.cfg.FixtureID,
		UserTeam:      m.cfg.UserTeam,
		Opponent:      m.cfg.Opponent,
		Phase:         m.phase,
		Toss:          m.toss,
		Innings:       len(m.innings),
		BallsLeft:     m.cfg.Overs * cricket.BallsPerOver,
		WicketsLeft:   m.cfg.Wickets,
		OverBreak:     m.phase == cricket.PhaseOverBreak,
		RecentBatting: m.history.Batting.Values(),
		RecentBowling: m.history.Bowling.Values(),
		UserScore:     m.ScoreOf(m.cfg.UserTeam),
		OpponentScore: m.ScoreOf(m.cfg.Opponent),
	}
	if live := m.live(); live != nil {
		s.UserBatting = m.userBatting()
		s.BallsLeft = live.BallsLeft()
		s.WicketsLeft = live.WicketsLeft()
		s.Score = live.Score()
		s.Target = live.Target()
		s.BallInOver = live.BallInOver()
	}
	return s
}

// Phase is the current match phase.
func (m *Match) Phase() cricket.MatchPhase { return m.phase }

// Finished reports whether both innings are complete.
func (m *Match) Finished() bool { return m.phase == cricket.PhaseMatchFinished }

// FixtureID is the fixture this match is played for.
func (m *Match) FixtureID() int { return m.cfg.FixtureID }

// ScoreOf is team's total across the innings played so far.
func (m *Match) ScoreOf(team string) int {
	total := 0
	for _, l := range m.innings {
		if l.Team() == team {
			total += l.Score()
		}
	}
	return total
}

// Records returns copies of the first and second innings. An innings not yet
// started is returned empty.
func (m *Match) Records() (first, second cricket.InningsRecord) {
	if len(m.innings) > 0 {
		first = m.innings[0].Record()
	}
	if len(m.innings) > 1 {
		second = m.innings[1].Record()
	}
	return first, second
}
