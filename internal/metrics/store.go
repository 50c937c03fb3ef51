package metrics

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
)

// titlePrefix namespaces championship tallies among the rows of the metrics
// table.
const titlePrefix = "titles:"

// ErrNoTeam is returned when a title is recorded without a team.
var ErrNoTeam = errors.New("title needs a team")

type store struct {
	db *sql.DB
}

// NewTallyStore creates a TallyStore on the metrics table of db.
func NewTallyStore(db *sql.DB) TallyStore {
	return &store{db: db}
}

// AddTitle credits team with one more championship. The upsert is atomic in
// SQLite, so no lock is held around it.
func (s *store) AddTitle(ctx context.Context, team string) error {
	if strings.TrimSpace(team) == "" {
		return ErrNoTeam
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metrics (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1;
	`, titlePrefix+team)
	if err != nil {
		return err
	}
	log.Debug("Title tallied", "team", team)
	return nil
}

// Titles returns championships won per team. Rows outside the titles
// namespace are ignored.
func (s *store) Titles(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM metrics WHERE key LIKE ?", titlePrefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		if team, ok := strings.CutPrefix(key, titlePrefix); ok && team != "" {
			titles[team] = n
		}
	}
	return titles, rows.Err()
}
