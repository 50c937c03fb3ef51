package tournament

import (
	"errors"
	"time"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/match"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/notifier"
	"github.com/mauv0809/hand-cricket/internal/processor"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/mauv0809/hand-cricket/internal/standings"
)

var (
	// ErrInvalidSettings is returned by New for an unusable configuration.
	ErrInvalidSettings = errors.New("invalid tournament settings")
	// ErrPrematureAdvance is returned when simulation reaches a fixture the
	// user must play.
	ErrPrematureAdvance = errors.New("next fixture involves the user and must be played interactively")
	// ErrNoActiveMatch is returned by match operations when no match is open.
	ErrNoActiveMatch = errors.New("no active match")
	// ErrMatchInProgress is returned when the schedule is advanced while the
	// user's match is open.
	ErrMatchInProgress = errors.New("a match is in progress")
	// ErrNotUserFixture is returned when starting a match on a fixture the
	// user does not play in.
	ErrNotUserFixture = errors.New("next fixture does not involve the user")
	// ErrTournamentComplete is returned once every fixture has been played.
	ErrTournamentComplete = errors.New("tournament complete")
	// ErrBracketPending is returned when the next fixture still has an
	// unresolved slot.
	ErrBracketPending = errors.New("fixture is waiting on the bracket")
)

// Deps are the collaborators of a tournament. Source and Metrics are
// required; Chooser defaults to the adaptive AI drawing from Source and
// Notifier defaults to none.
type Deps struct {
	Source   random.Source
	Chooser  match.Chooser
	Notifier notifier.Notifier
	Metrics  metrics.Metrics
}

// Tournament is one league plus playoffs. It is single-writer: callers must
// serialize access.
type Tournament struct {
	id        string
	settings  Settings
	createdAt time.Time

	src       random.Source
	chooser   match.Chooser
	notifier  notifier.Notifier
	metrics   metrics.Metrics
	table     *standings.Table
	processor *processor.Processor

	fixtures []cricket.Fixture
	current  int
	match    *match.Match
	champion string
}
