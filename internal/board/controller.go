package board

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/laststance/gitbox-sub002/internal/board/gesture"
	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/models"
)

// OpState tracks one reorder operation through its optimistic lifecycle.
type OpState int

const (
	OpIdle OpState = iota
	OpLocalApplied
	OpRemotePending
	OpRemoteConfirmed
	OpRemoteFailed
)

// Pending is one operation whose local effect is already visible and whose
// remote writes have not finished. Sync runs the writes; Finish settles the
// operation, rolling the model back when the writes failed.
type Pending struct {
	state OpState
	op    models.DragOperation

	// exactly one of these holds the pre-operation snapshot to roll back to
	columnSnapshot []*models.Column
	cardSnapshot   []*models.Card

	// re-pushed onto the history when a failed undo is rolled back
	undoneColumns []*models.Column
	undoneCards   []*models.Card
	isUndo        bool

	write func(ctx context.Context) error
}

// State returns the operation's current lifecycle state.
func (p *Pending) State() OpState {
	return p.state
}

// Sync issues the operation's remote writes. Safe to call off the event
// loop; it touches no session state.
func (p *Pending) Sync(ctx context.Context) error {
	p.state = OpRemotePending
	if p.write == nil {
		return nil
	}
	return p.write(ctx)
}

// Controller applies resolved drag operations to the session with
// optimistic-update semantics: snapshot, mutate locally, persist in the
// background, roll back in full if persistence fails.
type Controller struct {
	session *Session
	store   database.RemoteStore
}

// NewController wires a controller to a session and its store.
func NewController(session *Session, store database.RemoteStore) *Controller {
	return &Controller{session: session, store: store}
}

// Apply resolves op against the current model. When the operation is a
// no-op (self-drop, unchanged position) it returns (nil, false) and neither
// the model, the history, nor the store is touched. Otherwise the model is
// replaced immediately and the returned Pending carries the remote writes,
// still to be issued via Sync and settled via Finish.
func (c *Controller) Apply(op gesture.Operation) (*Pending, bool) {
	model := c.session.model

	switch op := op.(type) {
	case gesture.CardMoveWithin:
		next, updates := MoveCardWithinColumn(model, op.CardID, op.TargetIndex)
		return c.applyCardOp(model, next, updates, op.CardID)

	case gesture.CardMoveAcross:
		next, updates := MoveCardAcrossColumns(model, op.CardID, op.ToStatusID, op.DropIndex)
		return c.applyCardOp(model, next, updates, op.CardID)

	case gesture.ColumnSwap:
		next, _ := SwapColumns(model, op.ColumnID, op.TargetID)
		if next == model {
			return nil, false
		}
		p := c.applyColumnOp(model, next, op.ColumnID)
		a, b := op.ColumnID, op.TargetID
		p.write = func(ctx context.Context) error {
			return c.store.SwapColumnPositions(ctx, a, b)
		}
		return p, true

	case gesture.ColumnInsertShift:
		next, updates := InsertColumnWithShift(model, op.ColumnID, op.Target)
		if next == model {
			return nil, false
		}
		p := c.applyColumnOp(model, next, op.ColumnID)
		// The shift set is causally one unit; it goes out as a single batch.
		p.write = func(ctx context.Context) error {
			return c.store.BatchUpdateColumnPositions(ctx, columnUpdates(updates))
		}
		return p, true

	case gesture.ColumnMoveToNewRow:
		next, updates := MoveColumnToNewRow(model, op.ColumnID, op.TargetCol)
		if next == model {
			return nil, false
		}
		p := c.applyColumnOp(model, next, op.ColumnID)
		u := updates[0]
		p.write = func(ctx context.Context) error {
			return c.store.UpdateColumnPosition(ctx, u.ColumnID, u.GridRow, u.GridCol)
		}
		return p, true
	}

	return nil, false
}

// Undo pops the most relevant history entry (column history first), restores
// it as the visible model, and returns a Pending that persists the reverted
// layout. Undo is itself optimistic and subject to the same rollback.
func (c *Controller) Undo() (*Pending, bool) {
	if snapshot, ok := c.session.columnHistory.Pop(); ok {
		undone := models.CloneColumns(c.session.model.Columns())
		p := &Pending{
			state:          OpLocalApplied,
			isUndo:         true,
			columnSnapshot: undone,
			undoneColumns:  snapshot,
			op:             models.DragOperation{Kind: models.DragColumn, At: time.Now()},
		}
		c.session.model.ReplaceColumns(models.CloneColumns(snapshot))
		updates := allColumnPositions(snapshot)
		p.write = func(ctx context.Context) error {
			return c.store.BatchUpdateColumnPositions(ctx, updates)
		}
		return p, true
	}

	if snapshot, ok := c.session.cardHistory.Pop(); ok {
		undone := models.CloneCards(c.session.model.Cards())
		p := &Pending{
			state:        OpLocalApplied,
			isUndo:       true,
			cardSnapshot: undone,
			undoneCards:  snapshot,
			op:           models.DragOperation{Kind: models.DragCard, At: time.Now()},
		}
		c.session.model.ReplaceCards(models.CloneCards(snapshot))
		updates := allCardOrders(snapshot)
		p.write = func(ctx context.Context) error {
			return c.store.BatchUpdateCardOrders(ctx, updates)
		}
		return p, true
	}

	return nil, false
}

// Finish settles an operation after its remote writes completed or failed.
// On failure the model is restored to exactly the pre-operation snapshot
// and the history entry pushed for the operation is dropped, so a later
// undo cannot step past a change that was never persisted.
func (c *Controller) Finish(p *Pending, syncErr error) OpState {
	if syncErr == nil {
		p.state = OpRemoteConfirmed
		return p.state
	}

	p.state = OpRemoteFailed
	slog.Error("remote sync failed, rolling back", "kind", p.op.Kind.String(), "id", p.op.ID, "error", syncErr)

	switch {
	case p.columnSnapshot != nil:
		c.session.model.ReplaceColumns(p.columnSnapshot)
		if p.isUndo {
			// The undone snapshot was never applied remotely; put it back so
			// the undo can be retried.
			c.session.columnHistory.Push(p.undoneColumns)
		} else {
			c.session.columnHistory.DropLatest()
		}
	case p.cardSnapshot != nil:
		c.session.model.ReplaceCards(p.cardSnapshot)
		if p.isUndo {
			c.session.cardHistory.Push(p.undoneCards)
		} else {
			c.session.cardHistory.DropLatest()
		}
	}
	return p.state
}

// applyCardOp snapshots, swaps in the new model, and builds the write plan
// for a card operation. Independent row writes go out in parallel.
func (c *Controller) applyCardOp(prev, next *Model, updates []CardUpdate, cardID string) (*Pending, bool) {
	if next == prev || len(updates) == 0 {
		return nil, false
	}

	snapshot := models.CloneCards(prev.Cards())
	c.session.cardHistory.Push(snapshot)
	c.session.model = next

	p := &Pending{
		state:        OpLocalApplied,
		cardSnapshot: snapshot,
		op: models.DragOperation{
			Kind: models.DragCard,
			ID:   cardID,
			At:   time.Now(),
		},
	}

	if len(updates) == 1 {
		u := updates[0]
		p.write = func(ctx context.Context) error {
			return c.store.UpdateCardPosition(ctx, u.CardID, u.StatusID, u.Order)
		}
		return p, true
	}

	// A renumber produces independent single-row writes; dispatch them
	// concurrently and fail the operation if any write fails.
	rows := make([]CardUpdate, len(updates))
	copy(rows, updates)
	p.write = func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		for _, u := range rows {
			g.Go(func() error {
				return c.store.UpdateCardPosition(ctx, u.CardID, u.StatusID, u.Order)
			})
		}
		return g.Wait()
	}
	return p, true
}

func (c *Controller) applyColumnOp(prev, next *Model, columnID string) *Pending {
	snapshot := models.CloneColumns(prev.Columns())
	c.session.columnHistory.Push(snapshot)
	c.session.model = next

	op := models.DragOperation{Kind: models.DragColumn, ID: columnID, At: time.Now()}
	if col := prev.ColumnByID(columnID); col != nil {
		op.From = col.Pos()
	}
	if col := next.ColumnByID(columnID); col != nil {
		op.To = col.Pos()
	}

	return &Pending{
		state:          OpLocalApplied,
		columnSnapshot: snapshot,
		op:             op,
	}
}

func columnUpdates(updates []ColumnUpdate) []database.ColumnPositionUpdate {
	out := make([]database.ColumnPositionUpdate, len(updates))
	for i, u := range updates {
		out[i] = database.ColumnPositionUpdate{ColumnID: u.ColumnID, GridRow: u.GridRow, GridCol: u.GridCol}
	}
	return out
}

func allColumnPositions(columns []*models.Column) []database.ColumnPositionUpdate {
	out := make([]database.ColumnPositionUpdate, len(columns))
	for i, c := range columns {
		out[i] = database.ColumnPositionUpdate{ColumnID: c.ID, GridRow: c.GridRow, GridCol: c.GridCol}
	}
	return out
}

func allCardOrders(cards []*models.Card) []database.CardOrderUpdate {
	out := make([]database.CardOrderUpdate, len(cards))
	for i, c := range cards {
		out[i] = database.CardOrderUpdate{CardID: c.ID, StatusID: c.StatusID, Order: c.Order}
	}
	return out
}
