package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: invalid configuration: %s", err)
	}
	return cfg
}

// FromEnv builds a Config from lookup, applying defaults for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getInt := func(key string) (int, error) {
		raw := getEnv(key, "0")
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
		}
		return n, nil
	}

	overs, err := getInt("OVERS")
	if err != nil {
		return Config{}, err
	}
	wickets, err := getInt("WICKETS")
	if err != nil {
		return Config{}, err
	}
	seed, err := strconv.ParseInt(getEnv("SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("SEED must be an integer, got %q", getEnv("SEED", ""))
	}
	dryRun, err := strconv.ParseBool(getEnv("SLACK_DRY_RUN", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("SLACK_DRY_RUN must be a boolean, got %q", getEnv("SLACK_DRY_RUN", ""))
	}

	cfg := Config{
		DBName:   getEnv("DB_NAME", ":memory:"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
			DryRun:    dryRun,
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT", ""),
		Game: GameConfig{
			Teams:    splitTeams(getEnv("TEAMS", "")),
			Overs:    overs,
			Wickets:  wickets,
			UserTeam: getEnv("USER_TEAM", ""),
			Seed:     seed,
		},
	}
	return cfg, nil
}

func splitTeams(raw string) []string {
	var teams []string
	for _, team := range strings.Split(raw, ",") {
		if team = strings.TrimSpace(team); team != "" {
			teams = append(teams, team)
		}
	}
	return teams
}
