package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// ColumnRepo handles all column-related database operations, including the
// position writes the board engine issues after a reorder.
type ColumnRepo struct {
	db *sql.DB
}

// FetchColumns returns all columns of a board ordered by grid position.
func (r *ColumnRepo) FetchColumns(ctx context.Context, boardID string) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, board_id, title, color, wip_limit, grid_row, grid_col
		FROM columns WHERE board_id = ?
		ORDER BY grid_row, grid_col`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying columns for board %s: %w", boardID, err)
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		c := &models.Column{}
		var limit sql.NullInt64
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Title, &c.Color, &limit, &c.GridRow, &c.GridCol); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		c.WIPLimit = intPtr(limit)
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

// CreateColumn inserts a column at the given grid cell.
func (r *ColumnRepo) CreateColumn(ctx context.Context, boardID, title, color string, wipLimit *int, gridRow, gridCol int) (*models.Column, error) {
	col := &models.Column{
		ID:       uuid.NewString(),
		BoardID:  boardID,
		Title:    title,
		Color:    color,
		WIPLimit: wipLimit,
		GridRow:  gridRow,
		GridCol:  gridCol,
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO columns (id, board_id, title, color, wip_limit, grid_row, grid_col)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		col.ID, col.BoardID, col.Title, col.Color, nullableInt(col.WIPLimit), col.GridRow, col.GridCol,
	)
	if err != nil {
		return nil, fmt.Errorf("creating column: %w", err)
	}
	return col, nil
}

// GetColumnByID returns one column, or models.ErrColumnNotFound.
func (r *ColumnRepo) GetColumnByID(ctx context.Context, id string) (*models.Column, error) {
	c := &models.Column{}
	var limit sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, board_id, title, color, wip_limit, grid_row, grid_col
		FROM columns WHERE id = ?`, id,
	).Scan(&c.ID, &c.BoardID, &c.Title, &c.Color, &limit, &c.GridRow, &c.GridCol)
	if err == sql.ErrNoRows {
		return nil, models.ErrColumnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying column %s: %w", id, err)
	}
	c.WIPLimit = intPtr(limit)
	return c, nil
}

// UpdateColumn updates a column's title, color, and WIP limit.
func (r *ColumnRepo) UpdateColumn(ctx context.Context, id, title, color string, wipLimit *int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE columns SET title = ?, color = ?, wip_limit = ? WHERE id = ?",
		title, color, nullableInt(wipLimit), id,
	)
	if err != nil {
		return fmt.Errorf("updating column %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrColumnNotFound)
}

// DeleteColumn removes a column; its cards cascade.
func (r *ColumnRepo) DeleteColumn(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM columns WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting column %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrColumnNotFound)
}

// UpdateColumnPosition persists one column's grid cell.
func (r *ColumnRepo) UpdateColumnPosition(ctx context.Context, columnID string, gridRow, gridCol int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE columns SET grid_row = ?, grid_col = ? WHERE id = ?",
		gridRow, gridCol, columnID,
	)
	if err != nil {
		return fmt.Errorf("updating position of column %s: %w", columnID, err)
	}
	return requireRowAffected(res, models.ErrColumnNotFound)
}

// SwapColumnPositions exchanges the grid cells of two columns in one
// transaction, so a reader never observes both columns on the same cell.
func (r *ColumnRepo) SwapColumnPositions(ctx context.Context, columnID, otherID string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var aRow, aCol, bRow, bCol int
		if err := tx.QueryRowContext(ctx,
			"SELECT grid_row, grid_col FROM columns WHERE id = ?", columnID,
		).Scan(&aRow, &aCol); err != nil {
			if err == sql.ErrNoRows {
				return models.ErrColumnNotFound
			}
			return err
		}
		if err := tx.QueryRowContext(ctx,
			"SELECT grid_row, grid_col FROM columns WHERE id = ?", otherID,
		).Scan(&bRow, &bCol); err != nil {
			if err == sql.ErrNoRows {
				return models.ErrColumnNotFound
			}
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE columns SET grid_row = ?, grid_col = ? WHERE id = ?", bRow, bCol, columnID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE columns SET grid_row = ?, grid_col = ? WHERE id = ?", aRow, aCol, otherID); err != nil {
			return err
		}
		return nil
	})
}

// BatchUpdateColumnPositions applies a set of position writes atomically.
// Used for insert-with-shift, where a partially shifted row must never be
// persisted.
func (r *ColumnRepo) BatchUpdateColumnPositions(ctx context.Context, updates []ColumnPositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"UPDATE columns SET grid_row = ?, grid_col = ? WHERE id = ?")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, u := range updates {
			if _, err := stmt.ExecContext(ctx, u.GridRow, u.GridCol, u.ColumnID); err != nil {
				return fmt.Errorf("updating position of column %s: %w", u.ColumnID, err)
			}
		}
		return nil
	})
}
