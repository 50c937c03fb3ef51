package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogs(t *testing.T) {
	t.Helper()
	level := log.GetLevel()
	log.SetLevel(log.ErrorLevel)
	t.Cleanup(func() { log.SetLevel(level) })
}

func TestPlay_FullTournament(t *testing.T) {
	// Setup
	quietLogs(t)
	settings := tournament.Settings{Teams: []string{"CSK", "MI", "RCB", "KKR"}, Overs: 1, Wickets: 2, UserTeam: "CSK"}
	// Every prompt accepts one of these lines; the rest are re-prompted.
	input := strings.Repeat("bat\n4\n", 2000)
	var out bytes.Buffer

	// Execute
	err := play(context.Background(), strings.NewReader(input), &out, settings, 42)

	// Assert
	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "You are playing as CSK.")
	assert.Contains(t, text, "Scorecard")
	assert.Contains(t, text, "Final league table:")
	assert.Contains(t, text, "Champion: ")
	assert.Contains(t, text, "Played 4")
}

func TestPlay_TooFewTeamsEndsAfterLeague(t *testing.T) {
	quietLogs(t)
	settings := tournament.Settings{Teams: []string{"CSK", "MI", "RCB"}, Overs: 1, Wickets: 1, UserTeam: "CSK"}
	var out bytes.Buffer

	err := play(context.Background(), strings.NewReader(strings.Repeat("bowl\n1\n", 1000)), &out, settings, 7)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Not enough teams for playoffs.")
	assert.NotContains(t, out.String(), "Champion: ")
}

func TestPlay_InputRunsOut(t *testing.T) {
	quietLogs(t)
	settings := tournament.Settings{Teams: []string{"CSK", "MI"}, Overs: 1, Wickets: 1, UserTeam: "CSK"}
	var out bytes.Buffer

	err := play(context.Background(), strings.NewReader(""), &out, settings, 1)

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPlay_InvalidSettings(t *testing.T) {
	quietLogs(t)
	settings := tournament.Settings{Teams: []string{"CSK"}, Overs: 1, Wickets: 1, UserTeam: "CSK"}

	err := play(context.Background(), strings.NewReader(""), io.Discard, settings, 1)

	assert.ErrorIs(t, err, tournament.ErrInvalidSettings)
}

func TestAskRun_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	g := &game{in: bufio.NewScanner(strings.NewReader("5\nseven\n6\n")), out: &out}

	run, err := g.askRun(cricket.MatchState{UserBatting: true})

	require.NoError(t, err)
	assert.Equal(t, 6, run)
	assert.Equal(t, 2, strings.Count(out.String(), "is not a valid choice"))
	assert.Contains(t, out.String(), "Your bat")
}

func TestAskToss(t *testing.T) {
	var out bytes.Buffer
	g := &game{in: bufio.NewScanner(strings.NewReader("maybe\nBOWL\n")), out: &out}

	bat, err := g.askToss()

	require.NoError(t, err)
	assert.False(t, bat)
	assert.Contains(t, out.String(), "Please answer bat or bowl.")
}
