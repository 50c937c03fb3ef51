package metrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/hand-cricket/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (*sql.DB, TallyStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return db, NewTallyStore(db), teardown
}

func TestTitles(t *testing.T) {
	db, store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	// No titles yet
	titles, err := store.Titles(ctx)
	require.NoError(t, err)
	assert.Empty(t, titles)

	// First title
	require.NoError(t, store.AddTitle(ctx, "CSK"))
	titles, err = store.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"CSK": 1}, titles)

	// Repeat champion and a new one
	require.NoError(t, store.AddTitle(ctx, "CSK"))
	require.NoError(t, store.AddTitle(ctx, "MI"))
	titles, err = store.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"CSK": 2, "MI": 1}, titles)

	// Other tallies sharing the table are not titles
	_, err = db.Exec("INSERT INTO metrics (key, value) VALUES ('runs:CSK', 99)")
	require.NoError(t, err)
	titles, err = store.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"CSK": 2, "MI": 1}, titles)
}

func TestAddTitle_NoTeam(t *testing.T) {
	_, store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	assert.ErrorIs(t, store.AddTitle(ctx, ""), ErrNoTeam)
	assert.ErrorIs(t, store.AddTitle(ctx, "  "), ErrNoTeam)

	titles, err := store.Titles(ctx)
	require.NoError(t, err)
	assert.Empty(t, titles)
}
