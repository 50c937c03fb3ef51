package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		FixturesSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_fixtures_simulated_total",
			Help: "The total number of AI versus AI fixtures simulated.",
		}),
		UserMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_user_matches_total",
			Help: "The total number of interactive matches completed.",
		}),
		BallsBowled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_interactive_balls_total",
			Help: "The total number of balls resolved in interactive matches.",
		}),
		Wickets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_interactive_wickets_total",
			Help: "The total number of wickets taken in interactive matches.",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cricket_fixture_simulation_duration_seconds",
			Help:    "The duration of simulating one fixture.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_notifications_sent_total",
			Help: "The total number of notifications successfully delivered.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_notifications_failed_total",
			Help: "The total number of notifications that failed to deliver.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cricket_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.FixturesSimulated,
		s.UserMatches,
		s.BallsBowled,
		s.Wickets,
		s.SimulationDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncFixturesSimulated() {
	s.FixturesSimulated.Inc()
}

func (s *Service) IncUserMatches() {
	s.UserMatches.Inc()
}

func (s *Service) IncBallsBowled() {
	s.BallsBowled.Inc()
}

func (s *Service) IncWickets() {
	s.Wickets.Inc()
}

func (s *Service) ObserveSimulationDuration(seconds float64) {
	s.SimulationDuration.Observe(seconds)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
