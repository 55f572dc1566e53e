package board

import (
	"context"
	"fmt"

	"github.com/laststance/gitbox-sub002/internal/board/undo"
	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/models"
)

// Session owns the live state of one open board: the position model plus the
// two undo histories. It is created when a board is opened, torn down when
// the user navigates away, and never outlives either. All access happens on
// the UI event loop; only remote writes run concurrently.
type Session struct {
	boardID string
	model   *Model

	// Column structural edits and card moves are semantically unrelated, so
	// each class of edit gets its own history. Undo drains the column stack
	// before the card stack: structural edits are unwound first.
	columnHistory *undo.Stack[[]*models.Column]
	cardHistory   *undo.Stack[[]*models.Card]
}

// OpenSession fetches a board's layout and builds its in-memory session.
// A fetch failure here is fatal to the board view: there is nothing
// meaningful to render without the layout.
func OpenSession(ctx context.Context, store database.RemoteStore, boardID string) (*Session, error) {
	columns, err := store.FetchColumns(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("fetching columns for board %s: %w", boardID, err)
	}
	cards, err := store.FetchCards(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("fetching cards for board %s: %w", boardID, err)
	}

	return &Session{
		boardID:       boardID,
		model:         NewModel(columns, cards),
		columnHistory: undo.NewStack[[]*models.Column](undo.DefaultLimit),
		cardHistory:   undo.NewStack[[]*models.Card](undo.DefaultLimit),
	}, nil
}

// BoardID returns the board this session belongs to.
func (s *Session) BoardID() string {
	return s.boardID
}

// Model returns the current position model.
func (s *Session) Model() *Model {
	return s.model
}

// Refresh refetches the board's layout and swaps it into the model. Used
// after CRUD edits (new card, deleted column) that happen outside the
// reorder engine. Undo history is left intact.
func (s *Session) Refresh(ctx context.Context, store database.RemoteStore) error {
	columns, err := store.FetchColumns(ctx, s.boardID)
	if err != nil {
		return fmt.Errorf("refreshing columns for board %s: %w", s.boardID, err)
	}
	cards, err := store.FetchCards(ctx, s.boardID)
	if err != nil {
		return fmt.Errorf("refreshing cards for board %s: %w", s.boardID, err)
	}
	s.model.ReplaceColumns(columns)
	s.model.ReplaceCards(cards)
	return nil
}

// CanUndo reports whether either history holds a snapshot.
func (s *Session) CanUndo() bool {
	return s.columnHistory.CanUndo() || s.cardHistory.CanUndo()
}

// Close tears the session down. Undo history does not survive the session.
func (s *Session) Close() {
	s.columnHistory.Clear()
	s.cardHistory.Clear()
}
