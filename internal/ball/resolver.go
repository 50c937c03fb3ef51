package ball

import "github.com/mauv0809/hand-cricket/internal/cricket"

// Valid reports whether run is a legal choice: 0, 1, 2, 3, 4 or 6.
func Valid(run int) bool {
	switch run {
	case 0, 1, 2, 3, 4, 6:
		return true
	}
	return false
}

// Resolve combines both sides' choices into one ball. Equal choices are a
// wicket; otherwise the batter scores its own value and the bowler's choice
// has no further effect.
func Resolve(batting, bowling int) cricket.BallOutcome {
	if batting == bowling {
		return cricket.BallOutcome{Wicket: true}
	}
	return cricket.BallOutcome{Runs: batting}
}
