package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/ai"
	"github.com/mauv0809/hand-cricket/internal/archive"
	"github.com/mauv0809/hand-cricket/internal/config"
	"github.com/mauv0809/hand-cricket/internal/database"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/random"
	"github.com/mauv0809/hand-cricket/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
)

// numTournaments is how many complete tournaments are archived per run.
const numTournaments = 25

// The seeder fills the archive with auto-played tournaments so that the
// archive and titles routes have data to serve.
func main() {
	log.Info("Starting archive seeder...")
	cfg := config.Load()
	if cfg.DBName == ":memory:" && cfg.Turso.PrimaryURL == "" {
		log.Fatal("Refusing to seed an in-memory database; set DB_NAME or TURSO_PRIMARY_URL")
	}

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()
	log.Info("Successfully connected to the database.")

	store := archive.New(db, metrics.NewTallyStore(db))
	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	settings := tournament.DefaultSettings()

	ctx := context.Background()
	startTime := time.Now()
	for i := range numTournaments {
		seed := cfg.Game.Seed
		if seed != 0 {
			seed += int64(i)
		}
		src := random.New(seed)
		t, err := tournament.New(ctx, settings, tournament.Deps{
			Source:   src,
			Notifier: store,
			Metrics:  metricsSvc,
		})
		if err != nil {
			log.Fatalf("Failed to start tournament: %s", err)
		}
		if err := t.Autoplay(ctx, ai.New(src)); err != nil {
			log.Fatalf("Failed to play tournament %s: %s", t.ID(), err)
		}
		log.Info("Archived tournament", "n", i+1, "id", t.ID(), "champion", t.Champion())
	}

	titles, err := store.GetTitles()
	if err != nil {
		log.Fatalf("Failed to read titles: %s", err)
	}
	log.Info("Seeding complete", "tournaments", numTournaments, "duration", time.Since(startTime))
	for team, n := range titles {
		fmt.Printf("%-5s %d\n", team, n)
	}
}
