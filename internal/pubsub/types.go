package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/hand-cricket/internal/cricket"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. It doubles
// as the topic name.
type EventType string

const (
	EventTournamentStarted   EventType = "tournament-started"
	EventFixturesChanged     EventType = "fixtures-changed"
	EventStandingsChanged    EventType = "standings-changed"
	EventMatchStateChanged   EventType = "match-state-changed"
	EventTournamentCompleted EventType = "tournament-completed"
)

// FixturesMessage is the payload of EventFixturesChanged.
type FixturesMessage struct {
	TournamentID string            `msgpack:"tournament_id"`
	Fixtures     []cricket.Fixture `msgpack:"fixtures"`
}

// StandingsMessage is the payload of EventStandingsChanged.
type StandingsMessage struct {
	TournamentID string                   `msgpack:"tournament_id"`
	Standings    []cricket.StandingsEntry `msgpack:"standings"`
}

// MatchMessage is the payload of EventMatchStateChanged.
type MatchMessage struct {
	TournamentID string              `msgpack:"tournament_id"`
	Change       cricket.MatchChange `msgpack:"change"`
}

// CompletedMessage is the payload of EventTournamentCompleted.
type CompletedMessage struct {
	TournamentID string `msgpack:"tournament_id"`
	Champion     string `msgpack:"champion"`
}
