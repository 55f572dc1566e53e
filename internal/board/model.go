// Package board holds the in-memory layout of an open board session and the
// controller that applies reorder operations to it optimistically.
package board

import (
	"sort"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// Model is the authoritative in-memory layout for one board session:
// columns positioned on a 2D grid and cards assigned to columns with an
// explicit order. It performs no I/O; it is the substrate every other
// board component reads and writes.
type Model struct {
	columns []*models.Column
	cards   []*models.Card
}

// NewModel builds a Model from freshly fetched columns and cards.
func NewModel(columns []*models.Column, cards []*models.Card) *Model {
	m := &Model{columns: columns, cards: cards}
	m.sortCards()
	return m
}

func (m *Model) sortCards() {
	sort.SliceStable(m.cards, func(i, j int) bool {
		if m.cards[i].StatusID != m.cards[j].StatusID {
			return m.cards[i].StatusID < m.cards[j].StatusID
		}
		return m.cards[i].Order < m.cards[j].Order
	})
}

// Columns returns the current column snapshot. Callers must not modify the
// returned slice or its elements; mutation goes through reorder operations.
func (m *Model) Columns() []*models.Column {
	return m.columns
}

// Cards returns the current card snapshot, sorted by column then order.
func (m *Model) Cards() []*models.Card {
	return m.cards
}

// ColumnAt returns the column occupying a grid cell, or nil if the cell is
// empty.
func (m *Model) ColumnAt(row, col int) *models.Column {
	for _, c := range m.columns {
		if c.GridRow == row && c.GridCol == col {
			return c
		}
	}
	return nil
}

// ColumnByID returns the column with the given ID, or nil.
func (m *Model) ColumnByID(id string) *models.Column {
	for _, c := range m.columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CardByID returns the card with the given ID, or nil.
func (m *Model) CardByID(id string) *models.Card {
	for _, c := range m.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CardsIn returns the cards belonging to a column, sorted by order ascending.
func (m *Model) CardsIn(statusID string) []*models.Card {
	var out []*models.Card
	for _, c := range m.cards {
		if c.StatusID == statusID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// CountIn returns the number of cards currently in a column. Used for the
// advisory WIP display; exceeding a column's limit is never an error.
func (m *Model) CountIn(statusID string) int {
	n := 0
	for _, c := range m.cards {
		if c.StatusID == statusID {
			n++
		}
	}
	return n
}

// ColumnsInRow returns the columns of a grid row, sorted by grid column.
func (m *Model) ColumnsInRow(row int) []*models.Column {
	var out []*models.Column
	for _, c := range m.columns {
		if c.GridRow == row {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].GridCol < out[j].GridCol })
	return out
}

// MaxRow returns the highest grid row in use, or -1 for an empty board.
func (m *Model) MaxRow() int {
	max := -1
	for _, c := range m.columns {
		if c.GridRow > max {
			max = c.GridRow
		}
	}
	return max
}

// Clone returns a deep copy of the model. Reorder algorithms operate on
// clones so the visible model is never mutated in place.
func (m *Model) Clone() *Model {
	return &Model{
		columns: models.CloneColumns(m.columns),
		cards:   models.CloneCards(m.cards),
	}
}

// ReplaceColumns swaps in a full column snapshot, e.g. when undo restores a
// pre-operation state.
func (m *Model) ReplaceColumns(columns []*models.Column) {
	m.columns = columns
}

// ReplaceCards swaps in a full card snapshot.
func (m *Model) ReplaceCards(cards []*models.Card) {
	m.cards = cards
	m.sortCards()
}
