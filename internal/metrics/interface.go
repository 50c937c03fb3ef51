package metrics

import "context"

// Metrics defines the interface for collecting engine metrics.
// This decouples the engine from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncFixturesSimulated()
	IncUserMatches()
	IncBallsBowled()
	IncWickets()
	ObserveSimulationDuration(seconds float64)
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}

// TallyStore keeps championship tallies that outlive a single tournament.
type TallyStore interface {
	AddTitle(ctx context.Context, team string) error
	Titles(ctx context.Context) (map[string]int, error)
}
