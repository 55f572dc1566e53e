package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// RunMigrations creates the schema and seeds a default board when the
// database is empty. Exported so test fixtures can run it against an
// in-memory database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS columns (
		id TEXT PRIMARY KEY,
		board_id TEXT NOT NULL,
		title TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#6e7681',
		wip_limit INTEGER,
		grid_row INTEGER NOT NULL DEFAULT 0,
		grid_col INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		status_id TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		title TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		repo_full_name TEXT NOT NULL DEFAULT '',
		repo_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		stars INTEGER NOT NULL DEFAULT 0,
		language TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (status_id) REFERENCES columns(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, grid_row, grid_col);
	CREATE INDEX IF NOT EXISTS idx_cards_status ON cards(status_id, sort_order);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	return seedDefaultBoard(ctx, db)
}

// seedDefaultBoard inserts a starter board with the classic four lanes on
// grid row 0 when no boards exist yet.
func seedDefaultBoard(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM boards").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	boardID := uuid.NewString()
	if _, err := db.ExecContext(ctx,
		"INSERT INTO boards (id, name, created_at) VALUES (?, ?, ?)",
		boardID, "Repositories", time.Now().UTC(),
	); err != nil {
		return err
	}

	defaults := []struct {
		title string
		color string
	}{
		{"Backlog", "#8b949e"},
		{"Todo", "#58a6ff"},
		{"In Progress", "#d29922"},
		{"Done", "#3fb950"},
	}
	for i, col := range defaults {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO columns (id, board_id, title, color, grid_row, grid_col) VALUES (?, ?, ?, ?, 0, ?)",
			uuid.NewString(), boardID, col.title, col.color, i,
		); err != nil {
			return err
		}
	}

	return nil
}
