package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/archive"
	"github.com/mauv0809/hand-cricket/internal/match"
	"github.com/mauv0809/hand-cricket/internal/scheduler"
	"github.com/mauv0809/hand-cricket/internal/tournament"
)

// errNoTournament is returned when a request needs a tournament and none has
// been started.
var errNoTournament = errors.New("no tournament started")

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, match.ErrInvalidBall),
		errors.Is(err, tournament.ErrInvalidSettings):
		return http.StatusBadRequest
	case errors.Is(err, errNoTournament),
		errors.Is(err, tournament.ErrNoActiveMatch),
		errors.Is(err, archive.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, tournament.ErrPrematureAdvance),
		errors.Is(err, tournament.ErrMatchInProgress),
		errors.Is(err, tournament.ErrNotUserFixture),
		errors.Is(err, tournament.ErrTournamentComplete),
		errors.Is(err, tournament.ErrBracketPending),
		errors.Is(err, match.ErrInvalidPhase):
		return http.StatusConflict
	case errors.Is(err, scheduler.ErrInsufficientTeams):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	} else {
		log.Debug("Request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
