package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/pubsub"
	"github.com/mauv0809/hand-cricket/internal/tournament"
)

// errBadRequest marks malformed request bodies and parameters.
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// engine runs fn against the current tournament under the server lock and
// writes its result as JSON.
func (s *Server) engine(fn func(ctx context.Context, t *tournament.Tournament) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.tournament == nil {
			writeError(w, errNoTournament)
			return
		}
		v, err := fn(r.Context(), s.tournament)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func summarize(t *tournament.Tournament) tournamentResponse {
	resp := tournamentResponse{
		ID:            t.ID(),
		Settings:      t.Settings(),
		AtUserFixture: t.AtUserFixture(),
		Completed:     t.Completed(),
		Champion:      t.Champion(),
	}
	if f, ok := t.Current(); ok {
		resp.Current = &f
	}
	_, resp.MatchOpen = t.Match()
	return resp
}

// StartTournamentHandler replaces the current tournament. Fields missing from
// the body fall back to the server defaults.
func (s *Server) StartTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings := s.Defaults
		var req tournament.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, badRequest("invalid settings body: %v", err))
			return
		}
		if len(req.Teams) > 0 {
			settings.Teams = req.Teams
		}
		if req.Overs != 0 {
			settings.Overs = req.Overs
		}
		if req.Wickets != 0 {
			settings.Wickets = req.Wickets
		}
		if req.UserTeam != "" {
			settings.UserTeam = req.UserTeam
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		t, err := s.NewTournament(r.Context(), settings)
		if err != nil {
			writeError(w, err)
			return
		}
		if s.tournament != nil {
			log.Info("Replacing tournament", "old", s.tournament.ID(), "new", t.ID())
		}
		s.tournament = t
		writeJSON(w, http.StatusCreated, summarize(t))
	}
}

func (s *Server) TournamentHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return summarize(t), nil
	})
}

func (s *Server) FixturesHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return t.Fixtures(), nil
	})
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return t.Standings(), nil
	})
}

// AdvanceHandler simulates fixtures until the user's next fixture or the end
// of the tournament. ?steps=N caps the number simulated.
func (s *Server) AdvanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("steps"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, badRequest("steps must be a positive integer, got %q", raw))
				return
			}
			limit = n
		}
		s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
			played := []cricket.Fixture{}
			for f, err := range t.Steps(ctx) {
				if f.Played {
					played = append(played, f)
				}
				if err != nil {
					return nil, err
				}
				if limit > 0 && len(played) >= limit {
					break
				}
			}
			if len(played) == 0 {
				// Nothing was simulable; Step reports why without side effects.
				if _, err := t.Step(ctx); err != nil {
					return nil, err
				}
			}
			log.Info("Tournament advanced", "id", t.ID(), "played", len(played))
			return advanceResponse{
				Played:        played,
				AtUserFixture: t.AtUserFixture(),
				Completed:     t.Completed(),
				Champion:      t.Champion(),
			}, nil
		})(w, r)
	}
}

func (s *Server) MatchHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		state, ok := t.Match()
		if !ok {
			return nil, tournament.ErrNoActiveMatch
		}
		return state, nil
	})
}

func (s *Server) StartMatchHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return t.StartUserMatch(ctx)
	})
}

func (s *Server) TossHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tossRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, badRequest("invalid toss body: %v", err))
			return
		}
		s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
			return t.DecideToss(ctx, req.Bat)
		})(w, r)
	}
}

func (s *Server) BallHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ballRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Run == nil {
			writeError(w, badRequest("body must be {\"run\": n}"))
			return
		}
		s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
			return t.PlayBall(ctx, *req.Run)
		})(w, r)
	}
}

func (s *Server) ContinueHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return t.ContinueOver(ctx)
	})
}

func (s *Server) SecondInningsHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return t.StartSecondInnings(ctx)
	})
}

func (s *Server) CloseMatchHandler() http.HandlerFunc {
	return s.engine(func(ctx context.Context, t *tournament.Tournament) (any, error) {
		return t.CloseMatch(ctx)
	})
}

func (s *Server) TitlesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titles, err := s.Archive.GetTitles()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, titles)
	}
}

func (s *Server) ArchiveSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := s.Archive.GetTournament(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func (s *Server) ArchiveFixturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fixtures, err := s.Archive.GetFixtures(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, fixtures)
	}
}

func (s *Server) ArchiveStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := s.Archive.GetStandings(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, table)
	}
}

// PushHandler receives Pub/Sub push deliveries published by any engine
// instance and relays them to this instance's websocket clients.
func (s *Server) PushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		var pushMsg pushRequest
		if err := json.Unmarshal(bodyBytes, &pushMsg); err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		ev, err := s.decodeEvent(pubsub.EventType(pushMsg.Message.Attributes["event"]), rawData)
		if err != nil {
			log.Error("Failed to decode event", "error", err, "subscription", pushMsg.Subscription)
			// Acknowledge anyway; redelivery cannot fix a malformed payload.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := s.Hub.Publish(r.Context(), ev); err != nil {
			log.Error("Failed to relay event", "error", err, "event", ev.Type)
			http.Error(w, "Failed to relay event", http.StatusServiceUnavailable)
			return
		}
		log.Debug("Relayed pushed event", "event", ev.Type, "tournament", ev.TournamentID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) decodeEvent(kind pubsub.EventType, data []byte) (Event, error) {
	ev := Event{Type: kind}
	switch kind {
	case pubsub.EventTournamentStarted:
		var info cricket.TournamentInfo
		if err := s.PubSub.ProcessMessage(data, &info); err != nil {
			return ev, err
		}
		ev.TournamentID, ev.Payload = info.ID, info
	case pubsub.EventFixturesChanged:
		var msg pubsub.FixturesMessage
		if err := s.PubSub.ProcessMessage(data, &msg); err != nil {
			return ev, err
		}
		ev.TournamentID, ev.Payload = msg.TournamentID, msg.Fixtures
	case pubsub.EventStandingsChanged:
		var msg pubsub.StandingsMessage
		if err := s.PubSub.ProcessMessage(data, &msg); err != nil {
			return ev, err
		}
		ev.TournamentID, ev.Payload = msg.TournamentID, msg.Standings
	case pubsub.EventMatchStateChanged:
		var msg pubsub.MatchMessage
		if err := s.PubSub.ProcessMessage(data, &msg); err != nil {
			return ev, err
		}
		ev.TournamentID, ev.Payload = msg.TournamentID, msg.Change
	case pubsub.EventTournamentCompleted:
		var msg pubsub.CompletedMessage
		if err := s.PubSub.ProcessMessage(data, &msg); err != nil {
			return ev, err
		}
		ev.TournamentID, ev.Payload = msg.TournamentID, msg.Champion
	default:
		return ev, fmt.Errorf("unknown event type %q", kind)
	}
	return ev, nil
}
