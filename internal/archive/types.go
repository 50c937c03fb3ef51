package archive

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/hand-cricket/internal/metrics"
)

// ErrNotFound is returned for an unknown tournament id.
var ErrNotFound = errors.New("tournament not found in archive")

type store struct {
	db      *sql.DB
	tallies metrics.TallyStore
	mu      sync.RWMutex
}

// Summary is the archived header of a tournament.
type Summary struct {
	ID          string     `json:"id"`
	Teams       []string   `json:"teams"`
	Overs       int        `json:"overs"`
	Wickets     int        `json:"wickets"`
	UserTeam    string     `json:"user_team"`
	Champion    string     `json:"champion,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
