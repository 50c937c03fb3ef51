package tournament

import (
	"fmt"
	"slices"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

// MaxWickets is the bench limit: a side has at most ten wickets to lose.
const MaxWickets = 10

// DefaultTeams is the standard ten team roster.
var DefaultTeams = []string{"CSK", "RCB", "MI", "KKR", "DC", "RR", "SRH", "PBKS", "LSG", "GT"}

// Settings configures a tournament at start.
type Settings struct {
	Teams    []string `json:"teams"`
	Overs    int      `json:"overs"`
	Wickets  int      `json:"wickets"`
	UserTeam string   `json:"user_team"`
}

// DefaultSettings is the standard roster over two overs and three wickets,
// with the user playing the first team.
func DefaultSettings() Settings {
	return Settings{
		Teams:    slices.Clone(DefaultTeams),
		Overs:    2,
		Wickets:  3,
		UserTeam: DefaultTeams[0],
	}
}

// Validate checks the roster and format.
func (s Settings) Validate() error {
	if len(s.Teams) < 2 {
		return fmt.Errorf("%w: need at least 2 teams, got %d", ErrInvalidSettings, len(s.Teams))
	}
	seen := make(map[string]bool, len(s.Teams))
	for _, team := range s.Teams {
		if team == "" {
			return fmt.Errorf("%w: empty team name", ErrInvalidSettings)
		}
		if team == cricket.TBD {
			return fmt.Errorf("%w: %q is reserved for undecided playoff slots", ErrInvalidSettings, team)
		}
		if seen[team] {
			return fmt.Errorf("%w: duplicate team %q", ErrInvalidSettings, team)
		}
		seen[team] = true
	}
	if s.Overs <= 0 {
		return fmt.Errorf("%w: overs must be positive, got %d", ErrInvalidSettings, s.Overs)
	}
	if s.Wickets <= 0 || s.Wickets > MaxWickets {
		return fmt.Errorf("%w: wickets must be between 1 and %d, got %d", ErrInvalidSettings, MaxWickets, s.Wickets)
	}
	if !seen[s.UserTeam] {
		return fmt.Errorf("%w: user team %q is not in the roster", ErrInvalidSettings, s.UserTeam)
	}
	return nil
}
