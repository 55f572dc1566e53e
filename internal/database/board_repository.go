package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// CreateBoard inserts a new, empty board.
func (r *BoardRepo) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	board := &models.Board{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO boards (id, name, created_at) VALUES (?, ?, ?)",
		board.ID, board.Name, board.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}
	return board, nil
}

// GetAllBoards returns every board, oldest first.
func (r *BoardRepo) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM boards ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// GetBoardByID returns one board, or models.ErrBoardNotFound.
func (r *BoardRepo) GetBoardByID(ctx context.Context, id string) (*models.Board, error) {
	b := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM boards WHERE id = ?", id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying board %s: %w", id, err)
	}
	return b, nil
}

// RenameBoard updates a board's name.
func (r *BoardRepo) RenameBoard(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE boards SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("renaming board %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrBoardNotFound)
}

// DeleteBoard removes a board; its columns and cards cascade.
func (r *BoardRepo) DeleteBoard(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting board %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrBoardNotFound)
}

// requireRowAffected converts a zero-row write into the given domain error.
func requireRowAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
