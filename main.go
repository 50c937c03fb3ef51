package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/archive"
	"github.com/mauv0809/hand-cricket/internal/config"
	"github.com/mauv0809/hand-cricket/internal/database"
	server "github.com/mauv0809/hand-cricket/internal/http"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/notifier"
	"github.com/mauv0809/hand-cricket/internal/notifier/slack"
	"github.com/mauv0809/hand-cricket/internal/pubsub"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/mauv0809/hand-cricket/internal/tournament"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping info", "level", cfg.LogLevel)
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	archiveStore := archive.New(db, metrics.NewTallyStore(db))
	hub := server.NewHub()
	go hub.Run(ctx)

	notifiers := notifier.NewMulti(archiveStore)
	if cfg.Slack.Enabled() {
		notifiers.Add(slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc, cfg.Slack.DryRun))
	}
	var pubsubClient pubsub.PubSubClient
	if cfg.ProjectID != "" {
		pubsubClient, err = pubsub.New(ctx, cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer pubsubClient.Close()
		// Websocket clients are fed from the push subscription so every
		// instance sees every event.
		notifiers.Add(pubsub.NewNotifier(pubsubClient, metricsSvc))
	} else {
		notifiers.Add(hub)
	}

	src := random.New(cfg.Game.Seed)
	factory := func(ctx context.Context, settings tournament.Settings) (*tournament.Tournament, error) {
		return tournament.New(ctx, settings, tournament.Deps{
			Source:   src,
			Notifier: notifiers,
			Metrics:  metricsSvc,
		})
	}

	s := server.NewServer(factory, defaultSettings(cfg.Game), archiveStore, metricsHandler, hub, pubsubClient)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.Handler(),
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

// defaultSettings applies the configured overrides to the standard tournament.
func defaultSettings(game config.GameConfig) tournament.Settings {
	settings := tournament.DefaultSettings()
	if len(game.Teams) > 0 {
		settings.Teams = game.Teams
		if game.UserTeam == "" {
			settings.UserTeam = game.Teams[0]
		}
	}
	if game.Overs > 0 {
		settings.Overs = game.Overs
	}
	if game.Wickets > 0 {
		settings.Wickets = game.Wickets
	}
	if game.UserTeam != "" {
		settings.UserTeam = game.UserTeam
	}
	return settings
}
