package database

import (
	"context"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// ColumnPositionUpdate is one row of a batched column position write.
type ColumnPositionUpdate struct {
	ColumnID string
	GridRow  int
	GridCol  int
}

// CardOrderUpdate is one row of a batched card order write.
type CardOrderUpdate struct {
	CardID   string
	StatusID string
	Order    int
}

// RemoteStore is the persistence boundary the board engine writes through.
// The engine applies every layout change locally first and then issues these
// calls asynchronously; implementations must tolerate writes from different
// operations completing out of order.
type RemoteStore interface {
	FetchColumns(ctx context.Context, boardID string) ([]*models.Column, error)
	FetchCards(ctx context.Context, boardID string) ([]*models.Card, error)

	UpdateColumnPosition(ctx context.Context, columnID string, gridRow, gridCol int) error
	SwapColumnPositions(ctx context.Context, columnID, otherID string) error
	BatchUpdateColumnPositions(ctx context.Context, updates []ColumnPositionUpdate) error

	UpdateCardPosition(ctx context.Context, cardID, statusID string, order int) error
	BatchUpdateCardOrders(ctx context.Context, updates []CardOrderUpdate) error
}

// BoardRepository covers board CRUD.
type BoardRepository interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardByID(ctx context.Context, id string) (*models.Board, error)
	RenameBoard(ctx context.Context, id, name string) error
	DeleteBoard(ctx context.Context, id string) error
}

// ColumnRepository covers column CRUD on top of the RemoteStore position ops.
type ColumnRepository interface {
	CreateColumn(ctx context.Context, boardID, title, color string, wipLimit *int, gridRow, gridCol int) (*models.Column, error)
	GetColumnByID(ctx context.Context, id string) (*models.Column, error)
	UpdateColumn(ctx context.Context, id, title, color string, wipLimit *int) error
	DeleteColumn(ctx context.Context, id string) error
}

// CardRepository covers card CRUD on top of the RemoteStore order ops.
type CardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCardByID(ctx context.Context, id string) (*models.Card, error)
	UpdateCard(ctx context.Context, id, title, notes string) error
	UpdateCardMetadata(ctx context.Context, id, description, language string, stars int) error
	DeleteCard(ctx context.Context, id string) error
}

// DataStore is the unified interface consumed by the TUI and the services.
// Composed of the domain repositories plus the engine's RemoteStore contract,
// so consumers can depend on the narrow slice they need.
type DataStore interface {
	RemoteStore
	BoardRepository
	ColumnRepository
	CardRepository
}
