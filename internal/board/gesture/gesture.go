// Package gesture maps raw drag interactions to concrete reorder operations.
// The interpreter tracks one drag at a time: classify on pick-up, track a
// candidate drop target for visual feedback while dragging, and resolve to
// exactly one operation at drop time. Nothing here mutates the board.
package gesture

import (
	"github.com/laststance/gitbox-sub002/internal/models"
)

// State is the interpreter's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResolved
	StateCancelled
)

// TargetKind classifies the zone currently under the drag.
type TargetKind int

const (
	// TargetColumn is a column body (drop a card into the column's list,
	// or swap two columns).
	TargetColumn TargetKind = iota
	// TargetCard is a sibling card (drop at that card's index).
	TargetCard
	// TargetCell is an empty grid cell.
	TargetCell
	// TargetNewRow is the "new row" affordance below the grid.
	TargetNewRow
)

// DropTarget describes the candidate drop zone.
type DropTarget struct {
	Kind      TargetKind
	ColumnID  string         // TargetColumn, TargetCard
	CardID    string         // TargetCard
	CardIndex int            // TargetCard: index within the target column
	Cell      models.GridPos // TargetCell
	NewRowCol int            // TargetNewRow: grid column within the new row
}

// Operation is the resolved reorder operation, a tagged variant dispatched
// with a type switch by the controller.
type Operation interface {
	isOperation()
}

// CardMoveWithin moves a card to a new index inside its own column.
type CardMoveWithin struct {
	CardID      string
	TargetIndex int
}

// CardMoveAcross moves a card to another column. DropIndex < 0 appends.
type CardMoveAcross struct {
	CardID     string
	ToStatusID string
	DropIndex  int
}

// ColumnSwap exchanges the grid positions of two columns.
type ColumnSwap struct {
	ColumnID string
	TargetID string
}

// ColumnInsertShift places a column at a grid cell, shifting the rest of the
// row rightward from that cell.
type ColumnInsertShift struct {
	ColumnID string
	Target   models.GridPos
}

// ColumnMoveToNewRow places a column alone on a freshly appended grid row.
type ColumnMoveToNewRow struct {
	ColumnID  string
	TargetCol int
}

func (CardMoveWithin) isOperation()     {}
func (CardMoveAcross) isOperation()     {}
func (ColumnSwap) isOperation()         {}
func (ColumnInsertShift) isOperation()  {}
func (ColumnMoveToNewRow) isOperation() {}

// Interpreter is the drag state machine. One drag is in progress at most;
// the UI guarantees mutual exclusion of drag interactions.
type Interpreter struct {
	state State
	kind  models.DragKind

	columnID     string
	cardID       string
	originStatus string // card drags: column the card started in
	origin       models.GridPos

	target    DropTarget
	hasTarget bool
}

// NewInterpreter returns an idle interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// State returns the current lifecycle state.
func (it *Interpreter) State() State {
	return it.state
}

// Kind returns what is being dragged. Only meaningful while dragging.
func (it *Interpreter) Kind() models.DragKind {
	return it.kind
}

// Dragging reports whether a drag is in progress.
func (it *Interpreter) Dragging() bool {
	return it.state == StateDragging
}

// StartColumn begins a column drag from the given grid cell.
func (it *Interpreter) StartColumn(columnID string, origin models.GridPos) {
	*it = Interpreter{state: StateDragging, kind: models.DragColumn, columnID: columnID, origin: origin}
}

// StartCard begins a card drag from the given column.
func (it *Interpreter) StartCard(cardID, statusID string) {
	*it = Interpreter{state: StateDragging, kind: models.DragCard, cardID: cardID, originStatus: statusID}
}

// SetTarget records the candidate drop zone under the drag. This feeds
// visual feedback only; no operation is produced until Drop.
func (it *Interpreter) SetTarget(t DropTarget) {
	if it.state != StateDragging {
		return
	}
	it.target = t
	it.hasTarget = true
}

// ClearTarget marks the drag as being over no valid zone.
func (it *Interpreter) ClearTarget() {
	it.hasTarget = false
}

// Target returns the current candidate target, if any.
func (it *Interpreter) Target() (DropTarget, bool) {
	return it.target, it.hasTarget
}

// DraggedID returns the ID of the dragged card or column.
func (it *Interpreter) DraggedID() string {
	if it.kind == models.DragCard {
		return it.cardID
	}
	return it.columnID
}

// Cancel abandons the drag with no model effect: released outside a valid
// target, or explicitly cancelled (Escape).
func (it *Interpreter) Cancel() {
	if it.state != StateDragging {
		return
	}
	it.state = StateCancelled
}

// Drop resolves the drag to exactly one operation. Returns ok=false and
// transitions to Cancelled when no valid target is under the drag or the
// target does not map to an operation for the dragged kind.
func (it *Interpreter) Drop() (Operation, bool) {
	if it.state != StateDragging {
		return nil, false
	}
	if !it.hasTarget {
		it.state = StateCancelled
		return nil, false
	}

	var op Operation
	switch it.kind {
	case models.DragCard:
		op = it.resolveCardDrop()
	case models.DragColumn:
		op = it.resolveColumnDrop()
	}

	if op == nil {
		it.state = StateCancelled
		return nil, false
	}
	it.state = StateResolved
	return op, true
}

// Reset returns the interpreter to Idle, ready for the next drag.
func (it *Interpreter) Reset() {
	*it = Interpreter{}
}

func (it *Interpreter) resolveCardDrop() Operation {
	switch it.target.Kind {
	case TargetCard:
		if it.target.ColumnID == it.originStatus {
			return CardMoveWithin{CardID: it.cardID, TargetIndex: it.target.CardIndex}
		}
		return CardMoveAcross{CardID: it.cardID, ToStatusID: it.target.ColumnID, DropIndex: it.target.CardIndex}
	case TargetColumn:
		if it.target.ColumnID == it.originStatus {
			// Dropped back onto its own column body: nothing moves.
			return nil
		}
		return CardMoveAcross{CardID: it.cardID, ToStatusID: it.target.ColumnID, DropIndex: -1}
	default:
		// Cards cannot land on empty cells or the new-row affordance.
		return nil
	}
}

func (it *Interpreter) resolveColumnDrop() Operation {
	switch it.target.Kind {
	case TargetColumn:
		if it.target.ColumnID == it.columnID {
			return nil
		}
		// Occupied cell without an insert gesture is always a swap.
		return ColumnSwap{ColumnID: it.columnID, TargetID: it.target.ColumnID}
	case TargetCell:
		return ColumnInsertShift{ColumnID: it.columnID, Target: it.target.Cell}
	case TargetNewRow:
		return ColumnMoveToNewRow{ColumnID: it.columnID, TargetCol: it.target.NewRowCol}
	default:
		return nil
	}
}
