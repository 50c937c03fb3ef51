package cricket

import (
	"strconv"
	"time"
)

// TBD is the placeholder team name of an unresolved Final slot.
const TBD = "TBD"

// BallsPerOver is the number of balls in one over.
const BallsPerOver = 6

// FixtureType tags a fixture as a league or playoff match.
type FixtureType string

const (
	League     FixtureType = "LEAGUE"
	SemifinalA FixtureType = "SEMIFINAL_A"
	SemifinalB FixtureType = "SEMIFINAL_B"
	Final      FixtureType = "FINAL"
)

// IsPlayoff reports whether the fixture belongs to the knockout bracket.
func (t FixtureType) IsPlayoff() bool {
	return t == SemifinalA || t == SemifinalB || t == Final
}

// IsSemifinal reports whether the fixture feeds a Final slot.
func (t FixtureType) IsSemifinal() bool {
	return t == SemifinalA || t == SemifinalB
}

// BallOutcome is the result of a single delivery.
type BallOutcome struct {
	Runs   int  `json:"runs" msgpack:"runs"`
	Wicket bool `json:"wicket" msgpack:"wicket"`
	// Synthetic marks the run added to break a playoff tie; it was never bowled.
	Synthetic bool `json:"synthetic,omitempty" msgpack:"synthetic,omitempty"`
}

// String renders the outcome the way a scorecard shows it.
func (b BallOutcome) String() string {
	if b.Wicket {
		return "W"
	}
	return strconv.Itoa(b.Runs)
}

// OverSummary is a cumulative snapshot taken at the end of an over (or at the
// end of the innings) together with the outcomes bowled in that over.
type OverSummary struct {
	Score    int           `json:"score" msgpack:"score"`
	Wickets  int           `json:"wickets" msgpack:"wickets"`
	Balls    int           `json:"balls" msgpack:"balls"`
	Outcomes []BallOutcome `json:"outcomes" msgpack:"outcomes"`
}

// InningsRecord is the frozen record of one team's batting turn.
type InningsRecord struct {
	Team     string        `json:"team" msgpack:"team"`
	Score    int           `json:"score" msgpack:"score"`
	Wickets  int           `json:"wickets" msgpack:"wickets"`
	Balls    int           `json:"balls" msgpack:"balls"`
	Outcomes []BallOutcome `json:"outcomes" msgpack:"outcomes"`
	Overs    []OverSummary `json:"overs" msgpack:"overs"`
}

// Fixture is one scheduled match. It is created by the scheduler and mutated
// in place as it is played.
type Fixture struct {
	ID       int           `json:"id" msgpack:"id"`
	Team1    string        `json:"team1" msgpack:"team1"`
	Team2    string        `json:"team2" msgpack:"team2"`
	Type     FixtureType   `json:"type" msgpack:"type"`
	Played   bool          `json:"played" msgpack:"played"`
	Result   string        `json:"result,omitempty" msgpack:"result,omitempty"`
	Winner   string        `json:"winner,omitempty" msgpack:"winner,omitempty"`
	Innings1 InningsRecord `json:"innings1" msgpack:"innings1"`
	Innings2 InningsRecord `json:"innings2" msgpack:"innings2"`
}

// Involves reports whether team plays in the fixture.
func (f Fixture) Involves(team string) bool {
	return f.Team1 == team || f.Team2 == team
}

// Opponent returns the other side of the fixture for team.
func (f Fixture) Opponent(team string) string {
	if f.Team1 == team {
		return f.Team2
	}
	return f.Team1
}

// Ready reports whether both sides are known.
func (f Fixture) Ready() bool {
	return f.Team1 != TBD && f.Team2 != TBD
}

// StandingsEntry is one row of the league table.
type StandingsEntry struct {
	Team    string `json:"team" msgpack:"team"`
	Played  int    `json:"played" msgpack:"played"`
	Won     int    `json:"won" msgpack:"won"`
	Lost    int    `json:"lost" msgpack:"lost"`
	Tied    int    `json:"tied" msgpack:"tied"`
	Points  int    `json:"points" msgpack:"points"`
	RunDiff int    `json:"run_diff" msgpack:"run_diff"`
}

// Verdict is the processed outcome of a fixture.
type Verdict struct {
	Winner string `json:"winner,omitempty" msgpack:"winner,omitempty"`
	Tie    bool   `json:"tie" msgpack:"tie"`
	Margin int    `json:"margin" msgpack:"margin"`
	Result string `json:"result" msgpack:"result"`
}

// TournamentInfo describes a tournament when it starts.
type TournamentInfo struct {
	ID        string    `json:"id" msgpack:"id"`
	Teams     []string  `json:"teams" msgpack:"teams"`
	Overs     int       `json:"overs" msgpack:"overs"`
	Wickets   int       `json:"wickets" msgpack:"wickets"`
	UserTeam  string    `json:"user_team" msgpack:"user_team"`
	CreatedAt time.Time `json:"created_at" msgpack:"created_at"`
}
