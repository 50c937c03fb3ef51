package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncFixturesSimulated()
	s.IncFixturesSimulated()
	s.IncUserMatches()
	s.IncBallsBowled()
	s.IncWickets()
	s.IncNotifSent()
	s.IncNotifFailed()
	s.ObserveSimulationDuration(0.002)
	s.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.FixturesSimulated))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.UserMatches))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.BallsBowled))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Wickets))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.NotifSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.NotifFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(s.StartupTimeSeconds))

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cricket_fixtures_simulated_total 2")
	assert.Contains(t, string(body), "cricket_fixture_simulation_duration_seconds_count 1")
}
