package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/hand-cricket/internal/cricket"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use. Set Err to make every call fail.
type Mock struct {
	mu sync.Mutex

	Err error

	// Call records
	TournamentStartedCalls   []cricket.TournamentInfo
	FixturesChangedCalls     [][]cricket.Fixture
	StandingsChangedCalls    [][]cricket.StandingsEntry
	MatchStateChangedCalls   []cricket.MatchChange
	TournamentCompletedCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TournamentStartedCalls = nil
	m.FixturesChangedCalls = nil
	m.StandingsChangedCalls = nil
	m.MatchStateChangedCalls = nil
	m.TournamentCompletedCalls = nil
}

func (m *Mock) TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TournamentStartedCalls = append(m.TournamentStartedCalls, info)
	return m.Err
}

func (m *Mock) FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FixturesChangedCalls = append(m.FixturesChangedCalls, fixtures)
	return m.Err
}

func (m *Mock) StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsChangedCalls = append(m.StandingsChangedCalls, table)
	return m.Err
}

func (m *Mock) MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchStateChangedCalls = append(m.MatchStateChangedCalls, change)
	return m.Err
}

func (m *Mock) TournamentCompleted(ctx context.Context, tournamentID string, champion string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TournamentCompletedCalls = append(m.TournamentCompletedCalls, champion)
	return m.Err
}

// ChangeKinds returns the kinds of every recorded match change, in order.
func (m *Mock) ChangeKinds() []cricket.ChangeKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]cricket.ChangeKind, len(m.MatchStateChangedCalls))
	for i, c := range m.MatchStateChangedCalls {
		out[i] = c.Kind
	}
	return out
}
