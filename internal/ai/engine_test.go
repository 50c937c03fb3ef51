package ai

import (
	"testing"

	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/stretchr/testify/assert"
)

func TestEngine_ChooseRun_UsesOneDraw(t *testing.T) {
	src := random.NewSequence(nil, []float64{0, 0.9999})
	e := New(src)

	assert.Equal(t, 0, e.ChooseRun(Bowling, Situation{Innings: 1}, nil))
	assert.Equal(t, 6, e.ChooseRun(Batting, Situation{Innings: 1}, nil))
	assert.Equal(t, 2, src.Float64Calls)
}

func TestEngine_ChooseRun_HuntsBattingTell(t *testing.T) {
	e := New(random.New(1))
	recent := []int{4, 4, 4, 1, 2, 6}

	hits := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		run := e.ChooseRun(Bowling, Situation{Innings: 1}, recent)
		assert.NotEqual(t, 5, run)
		if run == 4 {
			hits++
		}
	}
	// The tell carries 100 of 158 weight.
	assert.Greater(t, float64(hits)/draws, 0.55)
}

func TestEngine_ChooseRun_AvoidsBowlingTell(t *testing.T) {
	e := New(random.New(2))
	recent := []int{6, 6, 6, 6}

	sixes := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		if e.ChooseRun(Batting, Situation{Innings: 1}, recent) == 6 {
			sixes++
		}
	}
	assert.Less(t, float64(sixes)/draws, 0.05)
}
