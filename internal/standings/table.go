package standings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

// ErrUnknownTeam is returned when a result names a team outside the table.
var ErrUnknownTeam = errors.New("team not in standings")

// Points awarded per league result.
const (
	PointsWin  = 2
	PointsTie  = 1
	PointsLoss = 0
)

// Table is the league table. Teams keep their registration order, which is
// also the final tiebreak.
type Table struct {
	order   []string
	entries map[string]*cricket.StandingsEntry
}

// New creates a table with a zeroed entry per team.
func New(teams []string) *Table {
	t := &Table{entries: make(map[string]*cricket.StandingsEntry, len(teams))}
	for _, team := range teams {
		if _, ok := t.entries[team]; ok {
			continue
		}
		t.order = append(t.order, team)
		t.entries[team] = &cricket.StandingsEntry{Team: team}
	}
	return t
}

// Record applies a league result. Both teams are validated before either
// entry changes.
func (t *Table) Record(team1, team2 string, score1, score2 int) error {
	e1, ok := t.entries[team1]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTeam, team1)
	}
	e2, ok := t.entries[team2]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTeam, team2)
	}

	e1.Played++
	e2.Played++
	e1.RunDiff += score1 - score2
	e2.RunDiff += score2 - score1
	switch {
	case score1 > score2:
		win(e1, e2)
	case score2 > score1:
		win(e2, e1)
	default:
		e1.Tied++
		e2.Tied++
		e1.Points += PointsTie
		e2.Points += PointsTie
	}
	return nil
}

func win(winner, loser *cricket.StandingsEntry) {
	winner.Won++
	winner.Points += PointsWin
	loser.Lost++
	loser.Points += PointsLoss
}

// Entry returns a copy of team's row.
func (t *Table) Entry(team string) (cricket.StandingsEntry, bool) {
	e, ok := t.entries[team]
	if !ok {
		return cricket.StandingsEntry{}, false
	}
	return *e, true
}

// Ranked returns the table ordered by points then run differential. Rows
// level on both stay in registration order.
func (t *Table) Ranked() []cricket.StandingsEntry {
	out := make([]cricket.StandingsEntry, len(t.order))
	for i, team := range t.order {
		out[i] = *t.entries[team]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].RunDiff > out[j].RunDiff
	})
	return out
}

// Teams returns the registered teams in order.
func (t *Table) Teams() []string {
	return append([]string(nil), t.order...)
}
