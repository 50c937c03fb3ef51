package ai

// Role is the side the AI plays on the current ball.
type Role int

const (
	// Bowling means the user is batting.
	Bowling Role = iota
	// Batting means the user is bowling.
	Batting
)

func (r Role) String() string {
	if r == Batting {
		return "batting"
	}
	return "bowling"
}

// Situation is the match context the AI reads before choosing.
type Situation struct {
	Innings   int
	Score     int
	Target    int
	BallsLeft int
}

// Weights holds a relative weight per run value, indexed by the value itself.
// Index 5 is never a legal choice and stays zero in every table.
type Weights [7]float64

// Runs lists the legal run choices in the order weights are enumerated.
var Runs = []int{0, 1, 2, 3, 4, 6}

// TellThreshold is how many repeats of one value in the recent window make
// it a tell.
const TellThreshold = 3
