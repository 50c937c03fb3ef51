package match

import "github.com/mauv0809/hand-cricket/internal/ai"

// ChooseRunCall records one call to MockChooser.ChooseRun.
type ChooseRunCall struct {
	Role      ai.Role
	Situation ai.Situation
	Recent    []int
}

// MockChooser is a scripted Chooser. Without ChooseRunFunc it always picks 0.
type MockChooser struct {
	ChooseRunFunc  func(role ai.Role, s ai.Situation, recent []int) int
	ChooseRunCalls []ChooseRunCall
}

// NewMockChooser returns a chooser that always picks run.
func NewMockChooser(run int) *MockChooser {
	return &MockChooser{ChooseRunFunc: func(ai.Role, ai.Situation, []int) int { return run }}
}

func (m *MockChooser) ChooseRun(role ai.Role, s ai.Situation, recent []int) int {
	m.ChooseRunCalls = append(m.ChooseRunCalls, ChooseRunCall{Role: role, Situation: s, Recent: recent})
	if m.ChooseRunFunc != nil {
		return m.ChooseRunFunc(role, s, recent)
	}
	return 0
}
