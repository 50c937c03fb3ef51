package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	// Execute
	cfg, err := FromEnv(env(nil))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Slack.Enabled())
	assert.Empty(t, cfg.ProjectID)
	assert.Equal(t, GameConfig{}, cfg.Game)
}

func TestFromEnv_Overrides(t *testing.T) {
	// Setup
	vars := map[string]string{
		"DB_NAME":          "cricket.db",
		"PORT":             "9090",
		"LOG_LEVEL":        "debug",
		"SLACK_BOT_TOKEN":  "xoxb-test",
		"SLACK_CHANNEL_ID": "C123",
		"SLACK_DRY_RUN":    "true",
		"GCP_PROJECT":      "cricket-prod",
		"TEAMS":            " CSK, MI ,,RCB ",
		"OVERS":            "5",
		"WICKETS":          "4",
		"USER_TEAM":        "MI",
		"SEED":             "42",
	}

	// Execute
	cfg, err := FromEnv(env(vars))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "cricket.db", cfg.DBName)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Slack.Enabled())
	assert.True(t, cfg.Slack.DryRun)
	assert.Equal(t, "cricket-prod", cfg.ProjectID)
	assert.Equal(t, []string{"CSK", "MI", "RCB"}, cfg.Game.Teams)
	assert.Equal(t, 5, cfg.Game.Overs)
	assert.Equal(t, 4, cfg.Game.Wickets)
	assert.Equal(t, "MI", cfg.Game.UserTeam)
	assert.Equal(t, int64(42), cfg.Game.Seed)
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		key, value string
	}{
		{"OVERS", "two"},
		{"WICKETS", "3.5"},
		{"SEED", "abc"},
		{"SLACK_DRY_RUN", "maybe"},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			_, err := FromEnv(env(map[string]string{tc.key: tc.value}))
			assert.ErrorContains(t, err, tc.key)
		})
	}
}
