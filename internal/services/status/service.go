// Package status implements business operations on board columns.
package status

import (
	"context"
	"fmt"

	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/models"
)

// Service defines all column-related business operations
type Service interface {
	ListColumns(ctx context.Context, boardID string) ([]*models.Column, error)
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	UpdateColumn(ctx context.Context, req UpdateColumnRequest) error
	DeleteColumn(ctx context.Context, columnID string) error
}

// CreateColumnRequest encapsulates all data needed to create a column.
// The new column is placed on the grid automatically: first free cell at the
// end of the last row, or alone on a new row when the board is empty.
type CreateColumnRequest struct {
	BoardID  string
	Title    string
	Color    string
	WIPLimit *int
}

// UpdateColumnRequest encapsulates a column update.
// Pointer fields are optional - nil means don't update.
type UpdateColumnRequest struct {
	ColumnID string
	Title    *string
	Color    *string
	WIPLimit *int
	ClearWIP bool // true to remove an existing limit
}

// service implements the Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new column service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListColumns returns a board's columns in grid order.
func (s *service) ListColumns(ctx context.Context, boardID string) ([]*models.Column, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	return s.repo.FetchColumns(ctx, boardID)
}

// CreateColumn validates the request, computes the grid placement, and
// inserts the column.
func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	if req.BoardID == "" {
		return nil, ErrInvalidBoardID
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.WIPLimit != nil && *req.WIPLimit <= 0 {
		return nil, ErrNegativeWIP
	}

	existing, err := s.repo.FetchColumns(ctx, req.BoardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	row, col := nextFreeCell(existing)

	column, err := s.repo.CreateColumn(ctx, req.BoardID, req.Title, req.Color, req.WIPLimit, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return column, nil
}

// UpdateColumn updates title, color, and WIP limit as requested.
func (s *service) UpdateColumn(ctx context.Context, req UpdateColumnRequest) error {
	if req.ColumnID == "" {
		return ErrInvalidID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.WIPLimit != nil && *req.WIPLimit <= 0 {
		return ErrNegativeWIP
	}

	current, err := s.repo.GetColumnByID(ctx, req.ColumnID)
	if err != nil {
		return fmt.Errorf("failed to get column: %w", err)
	}

	title := current.Title
	if req.Title != nil {
		title = *req.Title
	}
	color := current.Color
	if req.Color != nil {
		color = *req.Color
	}
	limit := current.WIPLimit
	if req.WIPLimit != nil {
		limit = req.WIPLimit
	}
	if req.ClearWIP {
		limit = nil
	}

	if err := s.repo.UpdateColumn(ctx, req.ColumnID, title, color, limit); err != nil {
		return fmt.Errorf("failed to update column: %w", err)
	}
	return nil
}

// DeleteColumn removes a column and, through the schema, its cards.
func (s *service) DeleteColumn(ctx context.Context, columnID string) error {
	if columnID == "" {
		return ErrInvalidID
	}
	if err := s.repo.DeleteColumn(ctx, columnID); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > 100 {
		return ErrTitleTooLong
	}
	return nil
}

// nextFreeCell places a new column after the rightmost column of the last
// grid row. An empty board starts at (0, 0).
func nextFreeCell(columns []*models.Column) (row, col int) {
	if len(columns) == 0 {
		return 0, 0
	}
	maxRow := 0
	for _, c := range columns {
		if c.GridRow > maxRow {
			maxRow = c.GridRow
		}
	}
	maxCol := -1
	for _, c := range columns {
		if c.GridRow == maxRow && c.GridCol > maxCol {
			maxCol = c.GridCol
		}
	}
	return maxRow, maxCol + 1
}
