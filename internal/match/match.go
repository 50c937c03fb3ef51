package match

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/ai"
	"github.com/mauv0809/hand-cricket/internal/ball"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/innings"
	"github.com/mauv0809/hand-cricket/internal/random"
)

// New sets up a match and flips the toss. When the AI wins the toss it also
// picks bat or bowl and the first innings starts straight away; otherwise the
// match waits for DecideToss.
func New(cfg Config, src random.Source, chooser Chooser) (*Match, []cricket.MatchChange) {
	m := &Match{
		cfg:   cfg,
		ai:    chooser,
		phase: cricket.PhaseAwaitingToss,
	}
	m.toss.UserWon = src.Intn(2) == 0
	log.Info("Toss flipped", "fixture", cfg.FixtureID, "user_won", m.toss.UserWon)

	if m.toss.UserWon {
		return m, []cricket.MatchChange{m.change(cricket.ChangeToss)}
	}
	aiBats := src.Intn(2) == 0
	m.toss.Decided = true
	m.toss.WinnerBats = aiBats
	m.toss.UserBatFirst = !aiBats
	log.Info("AI decided toss", "fixture", cfg.FixtureID, "ai_bats", aiBats)
	changes := []cricket.MatchChange{m.change(cricket.ChangeToss)}
	return m, append(changes, m.startInnings(innings.NoTarget))
}

// DecideToss records the user's choice after winning the toss and starts the
// first innings.
func (m *Match) DecideToss(bat bool) ([]cricket.MatchChange, error) {
	if m.phase != cricket.PhaseAwaitingToss || !m.toss.UserWon || m.toss.Decided {
		return nil, fmt.Errorf("decide toss: %w", ErrInvalidPhase)
	}
	m.toss.Decided = true
	m.toss.WinnerBats = bat
	m.toss.UserBatFirst = bat
	log.Info("User decided toss", "fixture", m.cfg.FixtureID, "bat", bat)
	return []cricket.MatchChange{m.change(cricket.ChangeToss), m.startInnings(innings.NoTarget)}, nil
}

// Play submits the user's run for the next ball. The AI chooses before the
// user's choice enters its history.
func (m *Match) Play(run int) ([]cricket.MatchChange, error) {
	if m.phase != cricket.PhaseInPlay {
		return nil, fmt.Errorf("%w: match is %s", ErrInvalidBall, m.phase)
	}
	if !ball.Valid(run) {
		return nil, fmt.Errorf("%w: %d is not one of 0,1,2,3,4,6", ErrInvalidBall, run)
	}

	live := m.live()
	userBatting := m.userBatting()
	role := ai.Batting
	if userBatting {
		role = ai.Bowling
	}
	aiRun := m.ai.ChooseRun(role, ai.Situation{
		Innings:   live.Number(),
		Score:     live.Score(),
		Target:    live.Target(),
		BallsLeft: live.BallsLeft(),
	}, m.history.Recent(userBatting))
	m.history.Record(userBatting, run)

	d := cricket.Delivery{UserChoice: run, AIChoice: aiRun, Batter: live.Team()}
	if userBatting {
		d.BatterChoice, d.BowlerChoice = run, aiRun
	} else {
		d.BatterChoice, d.BowlerChoice = aiRun, run
	}
	d.Outcome = ball.Resolve(d.BatterChoice, d.BowlerChoice)
	if err := live.Bowl(d.Outcome); err != nil {
		return nil, err
	}
	log.Debug("Ball played", "fixture", m.cfg.FixtureID, "innings", live.Number(), "batter", d.Batter, "user", run, "ai", aiRun, "outcome", d.Outcome)

	bc := m.change(cricket.ChangeBall)
	bc.Delivery = &d
	changes := []cricket.MatchChange{bc}

	switch live.Phase() {
	case innings.OverBreak:
		m.phase = cricket.PhaseOverBreak
		changes = append(changes, m.change(cricket.ChangeOverBreak))
	case innings.Complete:
		if live.Number() == 1 {
			m.phase = cricket.PhaseInningsBreak
			changes = append(changes, m.change(cricket.ChangeInningsComplete))
		} else {
			m.phase = cricket.PhaseMatchFinished
			changes = append(changes, m.change(cricket.ChangeMatchFinished))
		}
		log.Info("Innings complete", "fixture", m.cfg.FixtureID, "innings", live.Number(), "team", live.Team(), "score", live.Score())
	}
	return changes, nil
}

// Resume continues play after an over break.
func (m *Match) Resume() ([]cricket.MatchChange, error) {
	if m.phase != cricket.PhaseOverBreak {
		return nil, fmt.Errorf("resume: %w", ErrInvalidPhase)
	}
	if err := m.live().Resume(); err != nil {
		return nil, err
	}
	m.phase = cricket.PhaseInPlay
	return []cricket.MatchChange{m.change(cricket.ChangeOverResume)}, nil
}

// StartSecondInnings begins the chase. The target is the first innings score
// plus one.
func (m *Match) StartSecondInnings() ([]cricket.MatchChange, error) {
	if m.phase != cricket.PhaseInningsBreak {
		return nil, fmt.Errorf("start second innings: %w", ErrInvalidPhase)
	}
	return []cricket.MatchChange{m.startInnings(m.innings[0].Score() + 1)}, nil
}

func (m *Match) startInnings(target int) cricket.MatchChange {
	number := len(m.innings) + 1
	team := m.cfg.Opponent
	if (number == 1) == m.toss.UserBatFirst {
		team = m.cfg.UserTeam
	}
	m.innings = append(m.innings, innings.NewLive(number, team, m.cfg.Overs, m.cfg.Wickets, target))
	m.phase = cricket.PhaseInPlay
	log.Info("Innings started", "fixture", m.cfg.FixtureID, "innings", number, "batting", team)
	return m.change(cricket.ChangeInningsStart)
}

func (m *Match) live() *innings.Live {
	if len(m.innings) == 0 {
		return nil
	}
	return m.innings[len(m.innings)-1]
}

func (m *Match) userBatting() bool {
	live := m.live()
	return live != nil && live.Team() == m.cfg.UserTeam
}

func (m *Match) change(kind cricket.ChangeKind) cricket.MatchChange {
	return cricket.MatchChange{Kind: kind, State: m.Snapshot()}
}
