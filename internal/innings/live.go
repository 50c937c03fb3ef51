package innings

import (
	"errors"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

var (
	// ErrNotActive is returned when a ball is bowled outside the Active phase.
	ErrNotActive = errors.New("innings is not accepting balls")
	// ErrNotInOverBreak is returned when resuming an innings that is not paused.
	ErrNotInOverBreak = errors.New("innings is not in an over break")
)

// Phase is the state of a live innings.
type Phase int

const (
	Active Phase = iota
	OverBreak
	Complete
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case OverBreak:
		return "over-break"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Live is an innings played one ball at a time. After six balls it pauses in
// OverBreak until Resume is called, unless the innings ended on that ball.
type Live struct {
	scorer
	number     int
	maxBalls   int
	maxWickets int
	target     int
	ballInOver int
	phase      Phase
}

// NewLive starts innings number for team. A first innings takes NoTarget.
func NewLive(number int, team string, overs, wickets, target int) *Live {
	return &Live{
		scorer:     newScorer(team),
		number:     number,
		maxBalls:   overs * cricket.BallsPerOver,
		maxWickets: wickets,
		target:     target,
		phase:      Active,
	}
}

// Bowl applies one resolved ball.
func (l *Live) Bowl(o cricket.BallOutcome) error {
	if l.phase != Active {
		return ErrNotActive
	}
	l.add(o)
	l.ballInOver++

	end := l.WicketsLeft() <= 0 || l.BallsLeft() <= 0 || l.rec.Score >= l.target
	if l.ballInOver == cricket.BallsPerOver || end {
		l.closeOver()
		l.ballInOver = 0
	}
	switch {
	case end:
		l.phase = Complete
	case l.ballInOver == 0:
		l.phase = OverBreak
	}
	return nil
}

// Resume ends an over break.
func (l *Live) Resume() error {
	if l.phase != OverBreak {
		return ErrNotInOverBreak
	}
	l.phase = Active
	return nil
}

func (l *Live) Number() int      { return l.number }
func (l *Live) Team() string     { return l.rec.Team }
func (l *Live) Phase() Phase     { return l.phase }
func (l *Live) Score() int       { return l.rec.Score }
func (l *Live) BallInOver() int  { return l.ballInOver }
func (l *Live) BallsLeft() int   { return l.maxBalls - l.rec.Balls }
func (l *Live) WicketsLeft() int { return l.maxWickets - l.rec.Wickets }

// Target is the chase target, or zero in a first innings.
func (l *Live) Target() int {
	if l.target == NoTarget {
		return 0
	}
	return l.target
}

// Record returns a copy of the innings so far.
func (l *Live) Record() cricket.InningsRecord {
	return l.snapshot()
}
