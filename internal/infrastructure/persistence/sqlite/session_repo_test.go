package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitty/infinitty/internal/application/port"
	"github.com/infinitty/infinitty/internal/infrastructure/persistence/sqlite"
	"github.com/infinitty/infinitty/internal/logging"
	"github.com/infinitty/infinitty/internal/services"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func TestSessionRepositorySaveAndLoad(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSessionRepository(db)

	entries := []services.LayoutEntry{
		{ID: "p1", URL: "https://example.com", Geometry: port.Geometry{X: 0, Y: 0, Width: 800, Height: 600}},
		{ID: "p2", URL: "https://example.org", Geometry: port.Geometry{X: 800, Y: 0, Width: 400, Height: 600}},
	}
	require.NoError(t, repo.SaveLayout(ctx, entries))

	got, err := repo.LoadLayout(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	assert.Equal(t, 800.0, got[0].Geometry.Width)
}

func TestSessionRepositorySaveReplacesLayout(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSessionRepository(db)

	require.NoError(t, repo.SaveLayout(ctx, []services.LayoutEntry{
		{ID: "old", URL: "https://old.example.com"},
	}))
	require.NoError(t, repo.SaveLayout(ctx, []services.LayoutEntry{
		{ID: "new", URL: "https://new.example.com"},
	}))

	got, err := repo.LoadLayout(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestSessionRepositoryEmptyLayout(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSessionRepository(db)

	got, err := repo.LoadLayout(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.SaveLayout(ctx, nil))
	got, err = repo.LoadLayout(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
