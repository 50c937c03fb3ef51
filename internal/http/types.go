package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/mauv0809/hand-cricket/internal/archive"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/pubsub"
	"github.com/mauv0809/hand-cricket/internal/tournament"
)

// TournamentFactory starts a tournament with the given settings. The server
// owns the result and serializes every call into it.
type TournamentFactory func(ctx context.Context, settings tournament.Settings) (*tournament.Tournament, error)

type Server struct {
	// mu guards tournament and every call into it.
	mu         sync.Mutex
	tournament *tournament.Tournament

	NewTournament  TournamentFactory
	Defaults       tournament.Settings
	Archive        archive.ArchiveStore
	MetricsHandler http.Handler
	Hub            *Hub
	PubSub         pubsub.PubSubClient
	Router         *mux.Router
}

// errorResponse is the body of every non-2xx JSON reply.
type errorResponse struct {
	Error string `json:"error"`
}

type tossRequest struct {
	Bat bool `json:"bat"`
}

type ballRequest struct {
	Run *int `json:"run"`
}

// tournamentResponse is the summary returned by GET /tournament.
type tournamentResponse struct {
	ID            string              `json:"id"`
	Settings      tournament.Settings `json:"settings"`
	Current       *cricket.Fixture    `json:"current,omitempty"`
	AtUserFixture bool                `json:"at_user_fixture"`
	MatchOpen     bool                `json:"match_open"`
	Completed     bool                `json:"completed"`
	Champion      string              `json:"champion,omitempty"`
}

// advanceResponse lists the fixtures simulated by one advance call.
type advanceResponse struct {
	Played        []cricket.Fixture `json:"played"`
	AtUserFixture bool              `json:"at_user_fixture"`
	Completed     bool              `json:"completed"`
	Champion      string            `json:"champion,omitempty"`
}

// pushRequest is the envelope of a Pub/Sub push delivery.
type pushRequest struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data       string            `json:"data"` // base64-encoded message payload
		Attributes map[string]string `json:"attributes"`
		MessageID  string            `json:"messageId"`
	} `json:"message"`
}
