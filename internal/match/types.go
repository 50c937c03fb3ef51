package match

import (
	"errors"

	"github.com/mauv0809/hand-cricket/internal/ball"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/innings"
)

var (
	// ErrInvalidBall is returned for a run outside {0,1,2,3,4,6} or a ball
	// submitted while the match is not in play.
	ErrInvalidBall = errors.New("invalid ball submission")
	// ErrInvalidPhase is returned when an operation does not apply to the
	// current phase.
	ErrInvalidPhase = errors.New("operation not allowed in current match phase")
)

// Config describes the fixture a match is played for.
type Config struct {
	FixtureID int
	UserTeam  string
	Opponent  string
	Overs     int
	Wickets   int
}

// Match is one interactive match between the user and the AI.
type Match struct {
	cfg     Config
	ai      Chooser
	phase   cricket.MatchPhase
	toss    cricket.Toss
	innings []*innings.Live
	history ball.Tracker
}
