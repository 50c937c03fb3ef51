package scorecard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

// Overs renders a ball count in cricket notation: 14 balls is "2.2".
func Overs(balls int) string {
	return fmt.Sprintf("%d.%d", balls/cricket.BallsPerOver, balls%cricket.BallsPerOver)
}

// Score renders "score/wickets (overs)".
func Score(rec cricket.InningsRecord) string {
	return fmt.Sprintf("%d/%d (%s)", rec.Score, rec.Wickets, Overs(rec.Balls))
}

// Over renders the outcomes of a single over, e.g. "1 4 W 0 6 2".
func Over(o cricket.OverSummary) string {
	parts := make([]string, len(o.Outcomes))
	for i, b := range o.Outcomes {
		parts[i] = b.String()
		if b.Synthetic {
			parts[i] += "*"
		}
	}
	return strings.Join(parts, " ")
}

// WriteInnings writes the innings total followed by one line per over.
func WriteInnings(w io.Writer, rec cricket.InningsRecord) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", rec.Team, Score(rec)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, o := range rec.Overs {
		fmt.Fprintf(tw, "  Over %d\t%s\t%d/%d after %s\n", i+1, Over(o), o.Score, o.Wickets, Overs(o.Balls))
	}
	return tw.Flush()
}

// WriteFixture writes both innings of a played fixture and its result.
func WriteFixture(w io.Writer, f cricket.Fixture) error {
	if _, err := fmt.Fprintf(w, "%s v %s (%s)\n", f.Team1, f.Team2, f.Type); err != nil {
		return err
	}
	if err := WriteInnings(w, f.Innings1); err != nil {
		return err
	}
	if err := WriteInnings(w, f.Innings2); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, f.Result)
	return err
}

// WriteTable writes the league table with fixed-width columns.
func WriteTable(w io.Writer, table []cricket.StandingsEntry) error {
	if _, err := fmt.Fprintf(w, "%-3s %-5s %2s %2s %2s %2s %3s %5s\n", "#", "Team", "P", "W", "L", "T", "Pts", "RD"); err != nil {
		return err
	}
	for i, e := range table {
		if _, err := fmt.Fprintf(w, "%-3d %-5s %2d %2d %2d %2d %3d %+5d\n", i+1, e.Team, e.Played, e.Won, e.Lost, e.Tied, e.Points, e.RunDiff); err != nil {
			return err
		}
	}
	return nil
}
