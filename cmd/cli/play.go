package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/ball"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/mauv0809/hand-cricket/internal/scheduler"
	"github.com/mauv0809/hand-cricket/internal/scorecard"
	"github.com/mauv0809/hand-cricket/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var playOpts struct {
	teams   []string
	team    string
	overs   int
	wickets int
	seed    int64
	verbose bool
}

func init() {
	defaults := tournament.DefaultSettings()
	playCmd.Flags().StringSliceVar(&playOpts.teams, "teams", defaults.Teams, "Comma separated roster")
	playCmd.Flags().StringVar(&playOpts.team, "team", "", "Your team (defaults to the first in the roster)")
	playCmd.Flags().IntVar(&playOpts.overs, "overs", defaults.Overs, "Overs per innings")
	playCmd.Flags().IntVar(&playOpts.wickets, "wickets", defaults.Wickets, "Wickets per innings")
	playCmd.Flags().Int64Var(&playOpts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	playCmd.Flags().BoolVar(&playOpts.verbose, "verbose", false, "Show engine logs")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a whole tournament in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !playOpts.verbose {
			log.SetLevel(log.WarnLevel)
		}
		settings := tournament.Settings{
			Teams:    playOpts.teams,
			Overs:    playOpts.overs,
			Wickets:  playOpts.wickets,
			UserTeam: playOpts.team,
		}
		if settings.UserTeam == "" && len(settings.Teams) > 0 {
			settings.UserTeam = settings.Teams[0]
		}
		return play(cmd.Context(), os.Stdin, os.Stdout, settings, playOpts.seed)
	},
}

// play runs a tournament against stdin-style input until a champion is
// crowned or the input runs out.
func play(ctx context.Context, in io.Reader, out io.Writer, settings tournament.Settings, seed int64) error {
	if ctx == nil {
		ctx = context.Background()
	}
	src := random.New(seed)
	t, err := tournament.New(ctx, settings, tournament.Deps{
		Source:  src,
		Metrics: metrics.NewService(prometheus.NewRegistry()),
	})
	if err != nil {
		return err
	}
	g := &game{
		in:       bufio.NewScanner(in),
		out:      out,
		src:      src,
		t:        t,
		wickets:  settings.Wickets,
		userTeam: settings.UserTeam,
	}
	return g.run(ctx)
}

type game struct {
	in       *bufio.Scanner
	out      io.Writer
	src      random.Source
	t        *tournament.Tournament
	wickets  int
	userTeam string
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *game) run(ctx context.Context) error {
	g.printf("Welcome to hand cricket! You are playing as %s.\n", g.userTeam)
	err := g.playAll(ctx)
	if errors.Is(err, scheduler.ErrInsufficientTeams) {
		g.printf("\nNot enough teams for playoffs. Final league table:\n")
		scorecard.WriteTable(g.out, g.t.Standings())
		return nil
	}
	if err != nil {
		return err
	}

	g.printf("\nFinal league table:\n")
	scorecard.WriteTable(g.out, g.t.Standings())
	g.printf("\n🏆 Champion: %s\n", g.t.Champion())
	return nil
}

func (g *game) playAll(ctx context.Context) error {
	for !g.t.Completed() {
		for f, err := range g.t.Steps(ctx) {
			if f.Played {
				g.printf("%-12s %s v %s: %s\n", f.Type, f.Team1, f.Team2, f.Result)
			}
			if err != nil {
				return err
			}
		}
		if g.t.Completed() {
			break
		}
		if err := g.playMatch(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) playMatch(ctx context.Context) error {
	f, _ := g.t.Current()
	g.printf("\n=== %s: %s v %s ===\n", f.Type, f.Team1, f.Team2)
	changes, err := g.t.StartUserMatch(ctx)
	if err != nil {
		return err
	}
	g.show(changes)

	for {
		state, ok := g.t.Match()
		if !ok {
			return tournament.ErrNoActiveMatch
		}
		switch state.Phase {
		case cricket.PhaseAwaitingToss:
			var bat bool
			if bat, err = g.askToss(); err == nil {
				changes, err = g.t.DecideToss(ctx, bat)
			}
		case cricket.PhaseInPlay:
			var run int
			if run, err = g.askRun(state); err == nil {
				changes, err = g.t.PlayBall(ctx, run)
			}
		case cricket.PhaseOverBreak:
			if err = g.pause("End of over. Press enter to bowl the next one."); err == nil {
				changes, err = g.t.ContinueOver(ctx)
			}
		case cricket.PhaseInningsBreak:
			if err = g.pause("Innings break. Press enter to start the chase."); err == nil {
				changes, err = g.t.StartSecondInnings(ctx)
			}
		case cricket.PhaseMatchFinished:
			// The fixture comes back even when advancing past it fails.
			played, err := g.t.CloseMatch(ctx)
			if played.Played {
				g.printf("\nScorecard\n")
				scorecard.WriteFixture(g.out, played)
				g.printf("\nStandings\n")
				scorecard.WriteTable(g.out, g.t.Standings())
			}
			return err
		}
		if err != nil {
			return err
		}
		g.show(changes)
	}
}

// show narrates the changes returned by one engine call.
func (g *game) show(changes []cricket.MatchChange) {
	for _, c := range changes {
		s := c.State
		switch c.Kind {
		case cricket.ChangeToss:
			if s.Toss.UserWon {
				g.printf("You won the toss!\n")
			} else if s.UserBatting {
				g.printf("%s won the toss and chose to bowl.\n", s.Opponent)
			} else {
				g.printf("%s won the toss and chose to bat.\n", s.Opponent)
			}
		case cricket.ChangeInningsStart:
			batting := s.Opponent
			if s.UserBatting {
				batting = s.UserTeam
			}
			if s.Innings == 2 {
				g.printf("Innings 2: %s need %d to win.\n", batting, s.Target)
			} else {
				g.printf("Innings 1: %s to bat.\n", batting)
			}
		case cricket.ChangeBall:
			if c.Delivery != nil {
				g.printf("%s  [%d/%d, %d balls left]\n", scorecard.Ball(g.src, *c.Delivery), s.Score, g.wickets-s.WicketsLeft, s.BallsLeft)
			}
		case cricket.ChangeOverBreak:
			g.printf("-- end of over: %d/%d --\n", s.Score, g.wickets-s.WicketsLeft)
		case cricket.ChangeInningsComplete:
			g.printf("Innings complete: %d/%d. Target %d.\n", s.Score, g.wickets-s.WicketsLeft, s.Score+1)
		case cricket.ChangeMatchFinished:
			if c.Verdict != nil {
				g.printf("\n%s\n", c.Verdict.Result)
			}
		}
	}
}

func (g *game) readLine(prompt string) (string, error) {
	g.printf("%s ", prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(g.in.Text()), nil
}

func (g *game) askToss() (bool, error) {
	for {
		answer, err := g.readLine("Bat or bowl? [bat/bowl]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "bat":
			return true, nil
		case "bowl":
			return false, nil
		}
		g.printf("Please answer bat or bowl.\n")
	}
}

func (g *game) askRun(state cricket.MatchState) (int, error) {
	role := "bowl"
	if state.UserBatting {
		role = "bat"
	}
	for {
		answer, err := g.readLine(fmt.Sprintf("Your %s (0,1,2,3,4,6):", role))
		if err != nil {
			return 0, err
		}
		run, err := strconv.Atoi(answer)
		if err == nil && ball.Valid(run) {
			return run, nil
		}
		g.printf("%q is not a valid choice.\n", answer)
	}
}

func (g *game) pause(prompt string) error {
	_, err := g.readLine(prompt)
	return err
}
