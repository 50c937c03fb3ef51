package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the engine.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	FixturesSimulated  prometheus.Counter
	UserMatches        prometheus.Counter
	BallsBowled        prometheus.Counter
	Wickets            prometheus.Counter
	SimulationDuration prometheus.Histogram
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
