package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/infinitty/infinitty/internal/application/port"
	"github.com/infinitty/infinitty/internal/logging"
	"github.com/infinitty/infinitty/internal/services"
)

type sessionRepo struct {
	db *sql.DB
}

// NewSessionRepository returns a SessionStore backed by the session database.
func NewSessionRepository(db *sql.DB) services.SessionStore {
	return &sessionRepo{db: db}
}

// SaveLayout replaces the stored layout with the given one, atomically.
func (r *sessionRepo) SaveLayout(ctx context.Context, entries []services.LayoutEntry) error {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM session_surfaces"); err != nil {
		return fmt.Errorf("clear previous layout: %w", err)
	}

	const insert = `
		INSERT INTO session_surfaces (id, url, x, y, width, height, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, e := range entries {
		g := e.Geometry
		if _, err := tx.ExecContext(ctx, insert, e.ID, e.URL, g.X, g.Y, g.Width, g.Height, i); err != nil {
			return fmt.Errorf("save surface %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout save: %w", err)
	}

	log.Debug().Int("surfaces", len(entries)).Msg("layout saved")
	return nil
}

// LoadLayout returns the stored layout in its saved order.
func (r *sessionRepo) LoadLayout(ctx context.Context) ([]services.LayoutEntry, error) {
	const query = `
		SELECT id, url, x, y, width, height
		FROM session_surfaces
		ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []services.LayoutEntry
	for rows.Next() {
		var e services.LayoutEntry
		var g port.Geometry
		if err := rows.Scan(&e.ID, &e.URL, &g.X, &g.Y, &g.Width, &g.Height); err != nil {
			return nil, fmt.Errorf("scan layout row: %w", err)
		}
		e.Geometry = g
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate layout rows: %w", err)
	}
	return entries, nil
}
