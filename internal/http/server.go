package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/hand-cricket/internal/archive"
	"github.com/mauv0809/hand-cricket/internal/pubsub"
	"github.com/mauv0809/hand-cricket/internal/tournament"
	"github.com/rs/cors"
)

// NewServer builds the engine API. archive and pubsubClient may be nil, which
// disables the archive and push routes.
func NewServer(factory TournamentFactory, defaults tournament.Settings, store archive.ArchiveStore, metricsHandler http.Handler, hub *Hub, pubsubClient pubsub.PubSubClient) *Server {
	server := &Server{
		NewTournament:  factory,
		Defaults:       defaults,
		Archive:        store,
		MetricsHandler: metricsHandler,
		Hub:            hub,
		PubSub:         pubsubClient,
		Router:         mux.NewRouter(),
	}

	server.routes()
	return server
}

// Handler is the router wrapped with CORS for browser clients.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(s.Router)
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	r := s.Router
	r.Handle("/metrics", s.MetricsHandler).Methods(http.MethodGet)
	r.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware)).Methods(http.MethodGet)
	r.HandleFunc("/events", s.Hub.ServeWS)

	r.Handle("/tournament", Chain(s.StartTournamentHandler(), paramsMiddleware, timingMiddleware)).Methods(http.MethodPost)
	r.Handle("/tournament", Chain(s.TournamentHandler(), paramsMiddleware)).Methods(http.MethodGet)
	r.Handle("/tournament/fixtures", Chain(s.FixturesHandler(), paramsMiddleware)).Methods(http.MethodGet)
	r.Handle("/tournament/standings", Chain(s.StandingsHandler(), paramsMiddleware)).Methods(http.MethodGet)
	r.Handle("/tournament/advance", Chain(s.AdvanceHandler(), paramsMiddleware, timingMiddleware)).Methods(http.MethodPost)

	r.Handle("/match", Chain(s.MatchHandler(), paramsMiddleware)).Methods(http.MethodGet)
	r.Handle("/match/start", Chain(s.StartMatchHandler(), paramsMiddleware)).Methods(http.MethodPost)
	r.Handle("/match/toss", Chain(s.TossHandler(), paramsMiddleware)).Methods(http.MethodPost)
	r.Handle("/match/ball", Chain(s.BallHandler(), paramsMiddleware, timingMiddleware)).Methods(http.MethodPost)
	r.Handle("/match/continue", Chain(s.ContinueHandler(), paramsMiddleware)).Methods(http.MethodPost)
	r.Handle("/match/second-innings", Chain(s.SecondInningsHandler(), paramsMiddleware)).Methods(http.MethodPost)
	r.Handle("/match/close", Chain(s.CloseMatchHandler(), paramsMiddleware)).Methods(http.MethodPost)

	if s.Archive != nil {
		// titles is registered first so it is not taken for an id.
		r.Handle("/archive/titles", Chain(s.TitlesHandler(), paramsMiddleware)).Methods(http.MethodGet)
		r.Handle("/archive/{id}", Chain(s.ArchiveSummaryHandler(), paramsMiddleware)).Methods(http.MethodGet)
		r.Handle("/archive/{id}/fixtures", Chain(s.ArchiveFixturesHandler(), paramsMiddleware)).Methods(http.MethodGet)
		r.Handle("/archive/{id}/standings", Chain(s.ArchiveStandingsHandler(), paramsMiddleware)).Methods(http.MethodGet)
	}
	if s.PubSub != nil {
		r.Handle("/pubsub/push", Chain(s.PushHandler(), paramsMiddleware)).Methods(http.MethodPost)
	}
}
