package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/elevatescripts/backend/internal/models"
)

func (s *SQLite) StatusEntries(ctx context.Context) ([]models.StatusEntry, error) {
	query := `SELECT game, state, updated_at, COALESCE(note_fa, ''), COALESCE(note_en, '') FROM status_entries ORDER BY game`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.StatusEntry
	for rows.Next() {
		var e models.StatusEntry
		if err := rows.Scan(&e.Game, &e.State, &e.UpdatedAt, &e.NoteFA, &e.NoteEN); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLite) StatusByGame(ctx context.Context, game models.Game) (*models.StatusEntry, error) {
	query := `SELECT game, state, updated_at, COALESCE(note_fa, ''), COALESCE(note_en, '') FROM status_entries WHERE game = ?`
	var e models.StatusEntry
	err := s.DB.QueryRowContext(ctx, query, string(game)).Scan(&e.Game, &e.State, &e.UpdatedAt, &e.NoteFA, &e.NoteEN)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: status for %q", models.ErrNotFound, game)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertStatus relies on SQLite's ON CONFLICT clause so concurrent toggles of
// the same game can never leave two rows behind.
func (s *SQLite) UpsertStatus(ctx context.Context, entry *models.StatusEntry) error {
	query := `
		INSERT INTO status_entries (game, state, updated_at, note_fa, note_en)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(game) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at,
			note_fa = excluded.note_fa,
			note_en = excluded.note_en
	`
	_, err := s.DB.ExecContext(ctx, query,
		string(entry.Game), string(entry.State), entry.UpdatedAt, entry.NoteFA, entry.NoteEN,
	)
	return err
}
