package scheduler

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/random"
)

// PlayoffTeams is the size of the knockout bracket.
const PlayoffTeams = 4

var (
	// ErrInsufficientTeams is returned when fewer than PlayoffTeams teams are
	// ranked at the end of the league.
	ErrInsufficientTeams = errors.New("insufficient teams for playoffs")
	// ErrAlreadySeeded is returned when playoff fixtures already exist.
	ErrAlreadySeeded = errors.New("playoffs already seeded")
	// ErrNotSemifinal is returned when a bracket update is given anything but
	// a played semifinal.
	ErrNotSemifinal = errors.New("fixture is not a played semifinal")
	// ErrNoFinal is returned when the schedule has no Final to update.
	ErrNoFinal = errors.New("no final in schedule")
)

// League builds a single round robin: every pairing once, shuffled with
// Fisher-Yates, then numbered in play order.
func League(teams []string, src random.Source) []cricket.Fixture {
	fixtures := make([]cricket.Fixture, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			fixtures = append(fixtures, cricket.Fixture{
				Team1: teams[i],
				Team2: teams[j],
				Type:  cricket.League,
			})
		}
	}
	for i := len(fixtures) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		fixtures[i], fixtures[j] = fixtures[j], fixtures[i]
	}
	for i := range fixtures {
		fixtures[i].ID = i
	}
	log.Info("League scheduled", "teams", len(teams), "fixtures", len(fixtures))
	return fixtures
}

// SeedPlayoffs appends the bracket to fixtures: rank 1 v rank 4, rank 2 v
// rank 3, and a Final whose slots are filled as the semifinals finish.
func SeedPlayoffs(fixtures []cricket.Fixture, ranked []cricket.StandingsEntry) ([]cricket.Fixture, error) {
	if len(ranked) < PlayoffTeams {
		return fixtures, fmt.Errorf("%w: %d ranked", ErrInsufficientTeams, len(ranked))
	}
	for _, f := range fixtures {
		if f.Type.IsPlayoff() {
			return fixtures, ErrAlreadySeeded
		}
	}

	next := len(fixtures)
	fixtures = append(fixtures,
		cricket.Fixture{ID: next, Team1: ranked[0].Team, Team2: ranked[3].Team, Type: cricket.SemifinalA},
		cricket.Fixture{ID: next + 1, Team1: ranked[1].Team, Team2: ranked[2].Team, Type: cricket.SemifinalB},
		cricket.Fixture{ID: next + 2, Team1: cricket.TBD, Team2: cricket.TBD, Type: cricket.Final},
	)
	log.Info("Playoffs seeded",
		"semifinal_a", ranked[0].Team+" v "+ranked[3].Team,
		"semifinal_b", ranked[1].Team+" v "+ranked[2].Team)
	return fixtures, nil
}

// UpdateBracket writes a semifinal winner into its Final slot: Semifinal A
// fills Team1, Semifinal B fills Team2.
func UpdateBracket(fixtures []cricket.Fixture, semi cricket.Fixture) error {
	if !semi.Type.IsSemifinal() || !semi.Played || semi.Winner == "" {
		return fmt.Errorf("%w: fixture %d", ErrNotSemifinal, semi.ID)
	}
	for i := range fixtures {
		if fixtures[i].Type != cricket.Final {
			continue
		}
		if semi.Type == cricket.SemifinalA {
			fixtures[i].Team1 = semi.Winner
		} else {
			fixtures[i].Team2 = semi.Winner
		}
		log.Info("Bracket updated", "semifinal", semi.Type, "winner", semi.Winner, "final_ready", fixtures[i].Ready())
		return nil
	}
	return ErrNoFinal
}
