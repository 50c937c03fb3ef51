package scorecard

import (
	"fmt"

	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/random"
)

var commentary = map[string][]string{
	"0": {"Good defense.", "Straight to the fielder.", "No run.", "Swing and a miss!"},
	"1": {"Single taken.", "Pushed to long on.", "Quick run.", "Strike rotation."},
	"2": {"In the gap for two.", "Good running.", "Couple of runs."},
	"3": {"Great fielding saves one.", "Running hard for three."},
	"4": {"SMASHED! 4 runs.", "Beautiful cover drive!", "One bounce boundary."},
	"6": {"HUGE! It's a SIX!", "Out of the stadium!", "Monster hit!"},
	"W": {"OUT! Clean bowled!", "Caught at slip!", "Run out disaster!", "Up in the air... GONE!"},
}

// Line picks a commentary line for the outcome.
func Line(src random.Source, o cricket.BallOutcome) string {
	lines, ok := commentary[o.String()]
	if !ok || o.Synthetic {
		return ""
	}
	return lines[src.Intn(len(lines))]
}

// Ball describes one interactive delivery, e.g.
// "CSK scored 4 (Played 4, Bowled 2) - Beautiful cover drive!".
func Ball(src random.Source, d cricket.Delivery) string {
	return fmt.Sprintf("%s scored %d (Played %d, Bowled %d) - %s",
		d.Batter, d.Outcome.Runs, d.BatterChoice, d.BowlerChoice, Line(src, d.Outcome))
}
