package cricket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixture_Helpers(t *testing.T) {
	f := Fixture{Team1: "CSK", Team2: "MI", Type: League}

	assert.True(t, f.Involves("CSK"))
	assert.True(t, f.Involves("MI"))
	assert.False(t, f.Involves("RCB"))
	assert.Equal(t, "MI", f.Opponent("CSK"))
	assert.Equal(t, "CSK", f.Opponent("MI"))
	assert.True(t, f.Ready())

	final := Fixture{Team1: "CSK", Team2: TBD, Type: Final}
	assert.False(t, final.Ready())
}

func TestFixtureType(t *testing.T) {
	assert.False(t, League.IsPlayoff())
	assert.True(t, SemifinalA.IsPlayoff())
	assert.True(t, SemifinalB.IsSemifinal())
	assert.True(t, Final.IsPlayoff())
	assert.False(t, Final.IsSemifinal())
}

func TestBallOutcome_String(t *testing.T) {
	assert.Equal(t, "W", BallOutcome{Wicket: true}.String())
	assert.Equal(t, "6", BallOutcome{Runs: 6}.String())
	assert.Equal(t, "0", BallOutcome{}.String())
}

func TestMatchState_RunsNeeded(t *testing.T) {
	assert.Equal(t, 0, MatchState{Innings: 1, Target: 0, Score: 12}.RunsNeeded())
	assert.Equal(t, 8, MatchState{Innings: 2, Target: 20, Score: 12}.RunsNeeded())
	assert.Equal(t, 0, MatchState{Innings: 2, Target: 20, Score: 25}.RunsNeeded())
}
