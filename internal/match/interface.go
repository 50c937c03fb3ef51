package match

import "github.com/mauv0809/hand-cricket/internal/ai"

// Chooser picks the AI side's run for one ball. *ai.Engine implements it.
type Chooser interface {
	ChooseRun(role ai.Role, s ai.Situation, recent []int) int
}
