package ai

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/random"
)

// Engine picks the AI side's run value for each interactive ball.
type Engine struct {
	src random.Source
}

// New creates an Engine drawing from src.
func New(src random.Source) *Engine {
	return &Engine{src: src}
}

// ChooseRun returns the AI's value for one ball. recent holds the user's last
// choices in the role opposite to the AI's: their batting when the AI bowls,
// their bowling when the AI bats.
func (e *Engine) ChooseRun(role Role, s Situation, recent []int) int {
	var w Weights
	if role == Bowling {
		w = BowlingWeights(recent)
	} else {
		w = BattingWeights(s, recent)
	}
	run := ChooseWeighted(w, e.src.Float64())
	log.Debug("AI chose run", "role", role, "innings", s.Innings, "run", run, "weights", w)
	return run
}
