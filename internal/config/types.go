package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	LogLevel  string
	Slack     SlackConfig
	Turso     TursoConfig
	ProjectID string
	Game      GameConfig
}

type SlackConfig struct {
	Token     string
	ChannelID string
	DryRun    bool
}

// Enabled reports whether results should be posted to Slack at all.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// GameConfig overrides the default tournament settings. Zero values keep the
// defaults.
type GameConfig struct {
	Teams    []string
	Overs    int
	Wickets  int
	UserTeam string
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64
}
