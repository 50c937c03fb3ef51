package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/vmihailenco/msgpack/v5"
)

var _ ArchiveStore = (*store)(nil)

// New creates an ArchiveStore on db. Champion tallies go to tallies.
func New(db *sql.DB, tallies metrics.TallyStore) ArchiveStore {
	return &store{
		db:      db,
		tallies: tallies,
	}
}

func (s *store) TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamsJSON, err := json.Marshal(info.Teams)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tournaments (id, user_team, teams_json, overs, wickets, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING;
	`, info.ID, info.UserTeam, string(teamsJSON), info.Overs, info.Wickets, info.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to archive tournament %s: %w", info.ID, err)
	}
	log.Debug("Archived tournament", "id", info.ID)
	return nil
}

// FixturesChanged upserts the whole schedule in one transaction. Innings are
// stored as MessagePack blobs.
func (s *store) FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fixtures (tournament_id, id, team1, team2, fixture_type, played, result, winner, innings1, innings2)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tournament_id, id) DO UPDATE SET
			team1 = excluded.team1,
			team2 = excluded.team2,
			played = excluded.played,
			result = excluded.result,
			winner = excluded.winner,
			innings1 = excluded.innings1,
			innings2 = excluded.innings2;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, f := range fixtures {
		innings1, err := msgpack.Marshal(f.Innings1)
		if err != nil {
			tx.Rollback()
			return err
		}
		innings2, err := msgpack.Marshal(f.Innings2)
		if err != nil {
			tx.Rollback()
			return err
		}
		_, err = stmt.ExecContext(ctx, tournamentID, f.ID, f.Team1, f.Team2, string(f.Type), f.Played, f.Result, f.Winner, innings1, innings2)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to archive fixture %d: %w", f.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO standings (tournament_id, team, position, played, won, lost, tied, points, run_diff)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tournament_id, team) DO UPDATE SET
			position = excluded.position,
			played = excluded.played,
			won = excluded.won,
			lost = excluded.lost,
			tied = excluded.tied,
			points = excluded.points,
			run_diff = excluded.run_diff;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, e := range table {
		if _, err := stmt.ExecContext(ctx, tournamentID, e.Team, i+1, e.Played, e.Won, e.Lost, e.Tied, e.Points, e.RunDiff); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to archive standings for %s: %w", e.Team, err)
		}
	}
	return tx.Commit()
}

// MatchStateChanged is a no-op: ball by ball state is not archived, only the
// finished fixture.
func (s *store) MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error {
	return nil
}

// TournamentCompleted stamps the completion time. An empty champion is stored
// as NULL and earns no title.
func (s *store) TournamentCompleted(ctx context.Context, tournamentID string, champion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	winner := sql.NullString{String: champion, Valid: champion != ""}
	res, err := s.db.ExecContext(ctx, "UPDATE tournaments SET champion = ?, completed_at = ? WHERE id = ?", winner, time.Now().Unix(), tournamentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, tournamentID)
	}
	if !winner.Valid {
		log.Info("Archived tournament without champion", "tournament", tournamentID)
		return nil
	}
	if err := s.tallies.AddTitle(ctx, champion); err != nil {
		return fmt.Errorf("failed to tally title for %s: %w", champion, err)
	}
	log.Info("Archived champion", "tournament", tournamentID, "champion", champion)
	return nil
}

func (s *store) GetTournament(id string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		sum         Summary
		teamsJSON   string
		champion    sql.NullString
		createdAt   int64
		completedAt sql.NullInt64
	)
	err := s.db.QueryRow(`
		SELECT id, user_team, teams_json, overs, wickets, champion, created_at, completed_at
		FROM tournaments WHERE id = ?
	`, id).Scan(&sum.ID, &sum.UserTeam, &teamsJSON, &sum.Overs, &sum.Wickets, &champion, &createdAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Summary{}, err
	}
	if err := json.Unmarshal([]byte(teamsJSON), &sum.Teams); err != nil {
		return Summary{}, err
	}
	sum.Champion = champion.String
	sum.CreatedAt = time.Unix(createdAt, 0)
	if completedAt.Valid {
		t := time.Unix(completedAt.Int64, 0)
		sum.CompletedAt = &t
	}
	return sum, nil
}

func (s *store) GetFixtures(id string) ([]cricket.Fixture, error) {
	if _, err := s.GetTournament(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, team1, team2, fixture_type, played, result, winner, innings1, innings2
		FROM fixtures WHERE tournament_id = ? ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixtures := make([]cricket.Fixture, 0)
	for rows.Next() {
		f, err := scanFixture(rows)
		if err != nil {
			log.Error("Failed to scan fixture row", "error", err)
			continue
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

// scanFixture is a helper function to scan a single fixture row.
func scanFixture(scanner interface{ Scan(...any) error }) (cricket.Fixture, error) {
	var (
		f                  cricket.Fixture
		fixtureType        string
		result, winner     sql.NullString
		innings1, innings2 []byte
	)
	err := scanner.Scan(&f.ID, &f.Team1, &f.Team2, &fixtureType, &f.Played, &result, &winner, &innings1, &innings2)
	if err != nil {
		return f, err
	}
	f.Type = cricket.FixtureType(fixtureType)
	f.Result = result.String
	f.Winner = winner.String
	if len(innings1) > 0 {
		if err := msgpack.Unmarshal(innings1, &f.Innings1); err != nil {
			return f, err
		}
	}
	if len(innings2) > 0 {
		if err := msgpack.Unmarshal(innings2, &f.Innings2); err != nil {
			return f, err
		}
	}
	return f, nil
}

func (s *store) GetStandings(id string) ([]cricket.StandingsEntry, error) {
	if _, err := s.GetTournament(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT team, played, won, lost, tied, points, run_diff
		FROM standings WHERE tournament_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make([]cricket.StandingsEntry, 0)
	for rows.Next() {
		var e cricket.StandingsEntry
		if err := rows.Scan(&e.Team, &e.Played, &e.Won, &e.Lost, &e.Tied, &e.Points, &e.RunDiff); err != nil {
			return nil, err
		}
		table = append(table, e)
	}
	return table, rows.Err()
}

// GetTitles returns championships won per team across archived tournaments.
func (s *store) GetTitles() (map[string]int, error) {
	return s.tallies.Titles(context.Background())
}
