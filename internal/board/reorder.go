package board

import (
	"github.com/laststance/gitbox-sub002/internal/models"
)

// The pure reordering algorithms. Every function takes the current layout
// and returns a new layout plus the store update instructions needed to
// persist it; the input model is never mutated. The functions are total over
// their documented inputs: an unknown ID or an out-of-range target degrades
// to a no-op, never a panic or an error.

// CardUpdate instructs the store to persist one card's column and order.
type CardUpdate struct {
	CardID   string
	StatusID string
	Order    int
}

// ColumnUpdate instructs the store to persist one column's grid position.
type ColumnUpdate struct {
	ColumnID string
	GridRow  int
	GridCol  int
}

// MoveCardWithinColumn removes the card from its column's ordered list and
// reinserts it at targetIndex, then renumbers every card in the column to a
// strict 0..n-1 sequence. The full renumber rewrites each card's order on
// every in-column move, which keeps the order values collision-free.
//
// Returns the input model unchanged (same pointer) and no updates when the
// move is a no-op: unknown card, out-of-range index resolving to the current
// position, or targetIndex equal to the card's current index.
func MoveCardWithinColumn(m *Model, cardID string, targetIndex int) (*Model, []CardUpdate) {
	card := m.CardByID(cardID)
	if card == nil {
		return m, nil
	}

	siblings := m.CardsIn(card.StatusID)
	currentIndex := indexOfCard(siblings, cardID)
	if currentIndex < 0 {
		return m, nil
	}

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(siblings)-1 {
		targetIndex = len(siblings) - 1
	}
	if targetIndex == currentIndex {
		return m, nil
	}

	next := m.Clone()
	reordered := removeCardAt(next.CardsIn(card.StatusID), currentIndex)
	moved := next.CardByID(cardID)
	reordered = insertCardAt(reordered, moved, targetIndex)

	updates := make([]CardUpdate, 0, len(reordered))
	for i, c := range reordered {
		c.Order = i
		updates = append(updates, CardUpdate{CardID: c.ID, StatusID: c.StatusID, Order: i})
	}
	next.ReplaceCards(next.Cards())
	return next, updates
}

// MoveCardAcrossColumns removes the card from its source column and inserts
// it into the destination column: at dropIndex when the gesture specified
// one, appended to the end otherwise (dropIndex < 0). Appending assigns
// max(order)+1 and touches only the moved card; a mid-list insert renumbers
// the whole destination column.
func MoveCardAcrossColumns(m *Model, cardID, toStatusID string, dropIndex int) (*Model, []CardUpdate) {
	card := m.CardByID(cardID)
	if card == nil || m.ColumnByID(toStatusID) == nil {
		return m, nil
	}
	if card.StatusID == toStatusID {
		// Same column: either a same-position no-op or an in-column move.
		if dropIndex < 0 {
			return m, nil
		}
		return MoveCardWithinColumn(m, cardID, dropIndex)
	}

	next := m.Clone()
	moved := next.CardByID(cardID)
	dest := next.CardsIn(toStatusID)

	if dropIndex < 0 || dropIndex >= len(dest) {
		// Append: a single write covers the move.
		moved.StatusID = toStatusID
		moved.Order = nextOrder(dest)
		next.ReplaceCards(next.Cards())
		return next, []CardUpdate{{CardID: moved.ID, StatusID: moved.StatusID, Order: moved.Order}}
	}

	moved.StatusID = toStatusID
	dest = insertCardAt(dest, moved, dropIndex)
	updates := make([]CardUpdate, 0, len(dest))
	for i, c := range dest {
		c.Order = i
		updates = append(updates, CardUpdate{CardID: c.ID, StatusID: c.StatusID, Order: i})
	}
	next.ReplaceCards(next.Cards())
	return next, updates
}

// SwapColumns exchanges the grid positions of two columns. Dropping a column
// onto an occupied cell is always a swap, never an overwrite: the column
// formerly at the target ends up at the dragged column's old cell.
func SwapColumns(m *Model, columnID, targetID string) (*Model, []ColumnUpdate) {
	if columnID == targetID {
		return m, nil
	}
	a := m.ColumnByID(columnID)
	b := m.ColumnByID(targetID)
	if a == nil || b == nil {
		return m, nil
	}

	next := m.Clone()
	na := next.ColumnByID(columnID)
	nb := next.ColumnByID(targetID)
	na.GridRow, na.GridCol, nb.GridRow, nb.GridCol = nb.GridRow, nb.GridCol, na.GridRow, na.GridCol

	return next, []ColumnUpdate{
		{ColumnID: na.ID, GridRow: na.GridRow, GridCol: na.GridCol},
		{ColumnID: nb.ID, GridRow: nb.GridRow, GridCol: nb.GridCol},
	}
}

// InsertColumnWithShift moves a column to the target cell and shifts every
// other column in that row at or beyond the target one cell to the right.
// The shifted set is computed on a cloned layout in one pass, so a partially
// shifted row is never observable: callers always see either the old layout
// or the complete new one.
func InsertColumnWithShift(m *Model, columnID string, target models.GridPos) (*Model, []ColumnUpdate) {
	col := m.ColumnByID(columnID)
	if col == nil || target.Row < 0 || target.Col < 0 {
		return m, nil
	}
	if col.GridRow == target.Row && col.GridCol == target.Col {
		return m, nil
	}

	next := m.Clone()
	moved := next.ColumnByID(columnID)
	var updates []ColumnUpdate

	for _, c := range next.ColumnsInRow(target.Row) {
		if c.ID == moved.ID {
			continue
		}
		if c.GridCol >= target.Col {
			c.GridCol++
			updates = append(updates, ColumnUpdate{ColumnID: c.ID, GridRow: c.GridRow, GridCol: c.GridCol})
		}
	}
	moved.GridRow = target.Row
	moved.GridCol = target.Col
	updates = append(updates, ColumnUpdate{ColumnID: moved.ID, GridRow: moved.GridRow, GridCol: moved.GridCol})

	return next, updates
}

// MoveColumnToNewRow appends a fresh grid row below the current layout and
// places the column there at targetCol (0 when negative).
func MoveColumnToNewRow(m *Model, columnID string, targetCol int) (*Model, []ColumnUpdate) {
	col := m.ColumnByID(columnID)
	if col == nil {
		return m, nil
	}
	if targetCol < 0 {
		targetCol = 0
	}

	maxRow := m.MaxRow()
	// Already alone on the last row at the requested cell: nothing to do.
	if col.GridRow == maxRow && col.GridCol == targetCol && len(m.ColumnsInRow(maxRow)) == 1 {
		return m, nil
	}

	next := m.Clone()
	moved := next.ColumnByID(columnID)
	moved.GridRow = maxRow + 1
	moved.GridCol = targetCol

	return next, []ColumnUpdate{{ColumnID: moved.ID, GridRow: moved.GridRow, GridCol: moved.GridCol}}
}

func indexOfCard(cards []*models.Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func removeCardAt(cards []*models.Card, i int) []*models.Card {
	out := make([]*models.Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}

func insertCardAt(cards []*models.Card, card *models.Card, i int) []*models.Card {
	if i >= len(cards) {
		return append(cards, card)
	}
	out := make([]*models.Card, 0, len(cards)+1)
	out = append(out, cards[:i]...)
	out = append(out, card)
	return append(out, cards[i:]...)
}

func nextOrder(cards []*models.Card) int {
	if len(cards) == 0 {
		return 0
	}
	return cards[len(cards)-1].Order + 1
}
