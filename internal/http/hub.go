package http

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/notifier"
	"github.com/mauv0809/hand-cricket/internal/pubsub"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Clients only listen.
	maxMessageSize = 512

	// Outbound events buffered per client before it is dropped.
	clientBuffer = 64
)

// ErrHubClosed is returned when publishing to a hub that has stopped running.
var ErrHubClosed = errors.New("event hub closed")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is one notification as sent to websocket clients.
type Event struct {
	Type         pubsub.EventType `json:"type"`
	TournamentID string           `json:"tournament_id"`
	Payload      any              `json:"payload,omitempty"`
}

var _ notifier.Notifier = (*Hub)(nil)

// Hub broadcasts engine events to every connected websocket client. Run must
// be running for events to be delivered.
type Hub struct {
	clients    map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan Event
	done       chan struct{}
	connected  atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan Event, 256),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			delete(h.clients, c)
			close(c.send)
		}
		h.connected.Store(0)
		close(h.done)
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = true
			h.connected.Store(int64(len(h.clients)))
			log.Debug("Websocket client registered", "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.connected.Store(int64(len(h.clients)))
				log.Debug("Websocket client unregistered", "clients", len(h.clients))
			}
		case ev := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// Slow client; drop it rather than stall the engine.
					delete(h.clients, c)
					close(c.send)
					log.Warn("Dropped slow websocket client")
				}
			}
			h.connected.Store(int64(len(h.clients)))
		}
	}
}

// Clients is the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.connected.Load())
}

// Publish queues ev for every connected client.
func (h *Hub) Publish(ctx context.Context, ev Event) error {
	select {
	case h.broadcast <- ev:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error {
	return h.Publish(ctx, Event{Type: pubsub.EventTournamentStarted, TournamentID: info.ID, Payload: info})
}

func (h *Hub) FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error {
	return h.Publish(ctx, Event{Type: pubsub.EventFixturesChanged, TournamentID: tournamentID, Payload: fixtures})
}

func (h *Hub) StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error {
	return h.Publish(ctx, Event{Type: pubsub.EventStandingsChanged, TournamentID: tournamentID, Payload: table})
}

func (h *Hub) MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error {
	return h.Publish(ctx, Event{Type: pubsub.EventMatchStateChanged, TournamentID: tournamentID, Payload: change})
}

func (h *Hub) TournamentCompleted(ctx context.Context, tournamentID string, champion string) error {
	return h.Publish(ctx, Event{Type: pubsub.EventTournamentCompleted, TournamentID: tournamentID, Payload: champion})
}

// ServeWS upgrades the request and attaches the connection to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Websocket upgrade failed", "error", err)
		return
	}
	client := &wsClient{hub: h, conn: conn, send: make(chan Event, clientBuffer)}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

type wsClient struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound events.
	send chan Event
}

// readPump drains the connection so pongs and close frames are processed.
func (c *wsClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("Websocket read failed", "error", err)
			}
			return
		}
	}
}

// writePump pumps events from the hub to the websocket connection.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case ev, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
