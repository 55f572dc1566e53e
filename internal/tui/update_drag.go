package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/gitbox-sub002/internal/board/gesture"
	"github.com/laststance/gitbox-sub002/internal/models"
)

// updateDragging handles keys while a card or column is picked up. The
// arrow keys move the drop cursor; Drop resolves the gesture and kicks off
// the optimistic sync, Escape abandons it with no model effect.
func (m Model) updateDragging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.KeyMappings
	key := msg.String()

	switch key {
	case keys.CancelDrag:
		m.drag.Cancel()
		m.drag.Reset()
		m.mode = modeNormal
		return m, nil

	case keys.Drop:
		return m.resolveDrop()
	}

	switch m.drag.Kind() {
	case models.DragCard:
		m.moveCardCursor(key)
	case models.DragColumn:
		m.moveColumnCursor(key)
	}
	return m, nil
}

// moveCardCursor walks the drop cursor across columns (left/right, wrapping
// into adjacent grid rows) and through the target column's cards (up/down,
// where index -1 targets the column body and appends).
func (m *Model) moveCardCursor(key string) {
	keys := m.cfg.KeyMappings
	rows := m.rows()
	if len(rows) == 0 {
		return
	}

	switch key {
	case keys.Left, "left":
		if m.target.col > 0 {
			m.target.col--
		} else if m.target.row > 0 {
			m.target.row--
			m.target.col = len(rows[m.target.row]) - 1
		}
		m.target.cardIndex = -1

	case keys.Right, "right":
		if m.target.col < len(rows[m.target.row])-1 {
			m.target.col++
		} else if m.target.row < len(rows)-1 {
			m.target.row++
			m.target.col = 0
		}
		m.target.cardIndex = -1

	case keys.Up, "up":
		if m.target.cardIndex > -1 {
			m.target.cardIndex--
		}

	case keys.Down, "down":
		if m.target.cardIndex < m.targetCardCount()-1 {
			m.target.cardIndex++
		}
	}
}

// moveColumnCursor walks the drop cursor across grid cells. Moving below
// the last row reaches the new-row affordance; the insert toggle switches
// an occupied cell from swap to insert-with-shift.
func (m *Model) moveColumnCursor(key string) {
	keys := m.cfg.KeyMappings
	rows := m.rows()
	if len(rows) == 0 {
		return
	}

	switch key {
	case keys.Left, "left":
		if !m.target.newRow && m.target.col > 0 {
			m.target.col--
		}

	case keys.Right, "right":
		// One past the row's end is a valid empty-cell target.
		if !m.target.newRow && m.target.col < len(rows[m.target.row]) {
			m.target.col++
		}

	case keys.Up, "up":
		if m.target.newRow {
			m.target.newRow = false
			m.target.row = len(rows) - 1
		} else if m.target.row > 0 {
			m.target.row--
		}
		m.clampColumnCursor(rows)

	case keys.Down, "down":
		if m.target.row < len(rows)-1 {
			m.target.row++
			m.clampColumnCursor(rows)
		} else {
			m.target.newRow = true
		}

	case "i":
		m.target.insertMode = !m.target.insertMode
	}
}

func (m *Model) clampColumnCursor(rows [][]*models.Column) {
	if m.target.row < len(rows) && m.target.col > len(rows[m.target.row]) {
		m.target.col = len(rows[m.target.row])
	}
}

func (m *Model) targetCardCount() int {
	rows := m.rows()
	if m.target.row >= len(rows) {
		return 0
	}
	row := rows[m.target.row]
	if m.target.col >= len(row) {
		return 0
	}
	return m.session.Model().CountIn(row[m.target.col].ID)
}

// resolveDrop turns the drop cursor into a drop target, resolves the
// gesture, applies the operation optimistically, and starts the background
// sync. A cancelled or no-op drop leaves everything untouched.
func (m Model) resolveDrop() (tea.Model, tea.Cmd) {
	if dt, ok := m.buildDropTarget(); ok {
		m.drag.SetTarget(dt)
	} else {
		m.drag.ClearTarget()
	}

	op, ok := m.drag.Drop()
	m.drag.Reset()
	m.mode = modeNormal
	if !ok {
		return m, nil
	}

	pending, ok := m.ctrl.Apply(op)
	if !ok {
		return m, nil
	}

	m.selRow, m.selCol = m.target.row, m.target.col
	m.clampSelection()
	m.adviseWIP(op)
	return m, m.syncCmd(pending)
}

// adviseWIP surfaces a non-blocking notice when a card move pushed the
// destination column past its WIP limit. The move is never refused.
func (m *Model) adviseWIP(op gesture.Operation) {
	mv, ok := op.(gesture.CardMoveAcross)
	if !ok {
		return
	}
	model := m.session.Model()
	col := model.ColumnByID(mv.ToStatusID)
	if col == nil || col.WIPLimit == nil {
		return
	}
	if n := model.CountIn(col.ID); n > *col.WIPLimit {
		m.notify(notifyInfo, fmt.Sprintf("%s over WIP limit (%d/%d)", col.Title, n, *col.WIPLimit))
	}
}

// buildDropTarget maps the drop cursor onto the grid zone it points at.
func (m Model) buildDropTarget() (gesture.DropTarget, bool) {
	t := m.target
	rows := m.rows()

	switch m.drag.Kind() {
	case models.DragCard:
		if t.row >= len(rows) || len(rows[t.row]) == 0 {
			return gesture.DropTarget{}, false
		}
		row := rows[t.row]
		if t.col >= len(row) {
			t.col = len(row) - 1
		}
		col := row[t.col]
		cards := m.session.Model().CardsIn(col.ID)
		if t.cardIndex >= 0 && t.cardIndex < len(cards) {
			return gesture.DropTarget{
				Kind:      gesture.TargetCard,
				ColumnID:  col.ID,
				CardID:    cards[t.cardIndex].ID,
				CardIndex: t.cardIndex,
			}, true
		}
		return gesture.DropTarget{Kind: gesture.TargetColumn, ColumnID: col.ID}, true

	case models.DragColumn:
		if t.newRow {
			return gesture.DropTarget{Kind: gesture.TargetNewRow, NewRowCol: 0}, true
		}
		if t.row >= len(rows) {
			return gesture.DropTarget{}, false
		}
		row := rows[t.row]
		if t.col < len(row) {
			target := row[t.col]
			if t.insertMode {
				return gesture.DropTarget{
					Kind: gesture.TargetCell,
					Cell: models.GridPos{Row: target.GridRow, Col: target.GridCol},
				}, true
			}
			return gesture.DropTarget{Kind: gesture.TargetColumn, ColumnID: target.ID}, true
		}
		// Past the row's last column: an empty cell at the row's end.
		nextCol := 0
		if len(row) > 0 {
			nextCol = row[len(row)-1].GridCol + 1
		}
		return gesture.DropTarget{
			Kind: gesture.TargetCell,
			Cell: models.GridPos{Row: t.row, Col: nextCol},
		}, true
	}

	return gesture.DropTarget{}, false
}
