package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	fixturesSimulated   int
	userMatches         int
	ballsBowled         int
	wickets             int
	simulationDurations []float64
	notifSent           int
	notifFailed         int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		simulationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncFixturesSimulated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixturesSimulated++
}

func (m *Mock) IncUserMatches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userMatches++
}

func (m *Mock) IncBallsBowled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ballsBowled++
}

func (m *Mock) IncWickets() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wickets++
}

func (m *Mock) ObserveSimulationDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulationDurations = append(m.simulationDurations, seconds)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// FixturesSimulated returns the number of times IncFixturesSimulated was called.
func (m *Mock) FixturesSimulated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fixturesSimulated
}

// UserMatches returns the number of times IncUserMatches was called.
func (m *Mock) UserMatches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userMatches
}

// BallsBowled returns the number of times IncBallsBowled was called.
func (m *Mock) BallsBowled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ballsBowled
}

// Wickets returns the number of times IncWickets was called.
func (m *Mock) Wickets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wickets
}

// SimulationDurations returns every observed duration in order.
func (m *Mock) SimulationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.simulationDurations...)
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
