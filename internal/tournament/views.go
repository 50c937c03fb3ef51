package tournament

import (
	"slices"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

func (t *Tournament) ID() string { return t.id }

func (t *Tournament) Settings() Settings {
	s := t.settings
	s.Teams = slices.Clone(s.Teams)
	return s
}

// Info describes the tournament as announced at start.
func (t *Tournament) Info() cricket.TournamentInfo {
	return cricket.TournamentInfo{
		ID:        t.id,
		Teams:     slices.Clone(t.settings.Teams),
		Overs:     t.settings.Overs,
		Wickets:   t.settings.Wickets,
		UserTeam:  t.settings.UserTeam,
		CreatedAt: t.createdAt,
	}
}

// Fixtures returns the schedule, played and unplayed.
func (t *Tournament) Fixtures() []cricket.Fixture {
	return slices.Clone(t.fixtures)
}

// Standings returns the ranked league table.
func (t *Tournament) Standings() []cricket.StandingsEntry {
	return t.table.Ranked()
}

// Current returns the next fixture to be played.
func (t *Tournament) Current() (cricket.Fixture, bool) {
	if t.Completed() {
		return cricket.Fixture{}, false
	}
	return t.fixtures[t.current], true
}

// AtUserFixture reports whether the next fixture must be played by the user.
func (t *Tournament) AtUserFixture() bool {
	f, ok := t.Current()
	return ok && f.Involves(t.settings.UserTeam)
}

// Match returns the state of the open user match.
func (t *Tournament) Match() (cricket.MatchState, bool) {
	if t.match == nil {
		return cricket.MatchState{}, false
	}
	return t.match.Snapshot(), true
}

// Champion is the Final winner, empty until the Final is played.
func (t *Tournament) Champion() string { return t.champion }

// Completed reports whether every fixture has been played.
func (t *Tournament) Completed() bool {
	return t.current >= len(t.fixtures)
}
