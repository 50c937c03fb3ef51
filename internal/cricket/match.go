package cricket

// MatchPhase is the phase of an interactive match.
type MatchPhase string

const (
	PhaseAwaitingToss  MatchPhase = "AWAITING_TOSS"
	PhaseInPlay        MatchPhase = "IN_PLAY"
	PhaseOverBreak     MatchPhase = "OVER_BREAK"
	PhaseInningsBreak  MatchPhase = "INNINGS_BREAK"
	PhaseMatchFinished MatchPhase = "FINISHED"
)

// Toss records who won the toss and what they chose.
type Toss struct {
	UserWon      bool `json:"user_won" msgpack:"user_won"`
	Decided      bool `json:"decided" msgpack:"decided"`
	UserBatFirst bool `json:"user_bat_first" msgpack:"user_bat_first"`
	// WinnerBats is the winner's choice; meaningless until Decided.
	WinnerBats bool `json:"winner_bats" msgpack:"winner_bats"`
}

// MatchState is the transient state of a match involving the user.
type MatchState struct {
	FixtureID   int        `json:"fixture_id" msgpack:"fixture_id"`
	UserTeam    string     `json:"user_team" msgpack:"user_team"`
	Opponent    string     `json:"opponent" msgpack:"opponent"`
	Phase       MatchPhase `json:"phase" msgpack:"phase"`
	Toss        Toss       `json:"toss" msgpack:"toss"`
	Innings     int        `json:"innings" msgpack:"innings"`
	UserBatting bool       `json:"user_batting" msgpack:"user_batting"`
	BallsLeft   int        `json:"balls_left" msgpack:"balls_left"`
	WicketsLeft int        `json:"wickets_left" msgpack:"wickets_left"`
	// Score is the batting side's score in the current innings.
	Score         int   `json:"score" msgpack:"score"`
	UserScore     int   `json:"user_score" msgpack:"user_score"`
	OpponentScore int   `json:"opponent_score" msgpack:"opponent_score"`
	Target        int   `json:"target" msgpack:"target"`
	BallInOver    int   `json:"ball_in_over" msgpack:"ball_in_over"`
	OverBreak     bool  `json:"over_break" msgpack:"over_break"`
	RecentBatting []int `json:"recent_batting" msgpack:"recent_batting"`
	RecentBowling []int `json:"recent_bowling" msgpack:"recent_bowling"`
}

// RunsNeeded is the chase requirement in the second innings, floored at zero.
func (s MatchState) RunsNeeded() int {
	if s.Innings != 2 {
		return 0
	}
	if need := s.Target - s.Score; need > 0 {
		return need
	}
	return 0
}

// ChangeKind names what happened in a MatchChange.
type ChangeKind string

const (
	ChangeToss            ChangeKind = "toss"
	ChangeInningsStart    ChangeKind = "innings-start"
	ChangeBall            ChangeKind = "ball"
	ChangeOverBreak       ChangeKind = "over-break"
	ChangeOverResume      ChangeKind = "over-resume"
	ChangeInningsComplete ChangeKind = "innings-complete"
	ChangeMatchFinished   ChangeKind = "match-finished"
)

// Delivery is one resolved ball of an interactive match.
type Delivery struct {
	UserChoice   int         `json:"user_choice" msgpack:"user_choice"`
	AIChoice     int         `json:"ai_choice" msgpack:"ai_choice"`
	BatterChoice int         `json:"batter_choice" msgpack:"batter_choice"`
	BowlerChoice int         `json:"bowler_choice" msgpack:"bowler_choice"`
	Batter       string      `json:"batter" msgpack:"batter"`
	Outcome      BallOutcome `json:"outcome" msgpack:"outcome"`
}

// MatchChange is a state delta emitted by the interactive engine. State is
// the snapshot after the change was applied.
type MatchChange struct {
	Kind     ChangeKind `json:"kind" msgpack:"kind"`
	State    MatchState `json:"state" msgpack:"state"`
	Delivery *Delivery  `json:"delivery,omitempty" msgpack:"delivery,omitempty"`
	Verdict  *Verdict   `json:"verdict,omitempty" msgpack:"verdict,omitempty"`
}
