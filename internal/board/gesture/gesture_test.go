package gesture

import (
	"testing"

	"github.com/laststance/gitbox-sub002/internal/models"
)

func TestCardDropResolution(t *testing.T) {
	t.Run("onto a card in another column", func(t *testing.T) {
		it := NewInterpreter()
		it.StartCard("card1", "todo")
		it.SetTarget(DropTarget{Kind: TargetCard, ColumnID: "doing", CardID: "card9", CardIndex: 2})

		op, ok := it.Drop()
		if !ok {
			t.Fatal("expected a resolved operation")
		}
		got, isAcross := op.(CardMoveAcross)
		if !isAcross {
			t.Fatalf("resolved to %T", op)
		}
		if got.CardID != "card1" || got.ToStatusID != "doing" || got.DropIndex != 2 {
			t.Fatalf("unexpected operation %+v", got)
		}
		if it.State() != StateResolved {
			t.Fatalf("state = %v, want resolved", it.State())
		}
	})

	t.Run("onto a card in its own column", func(t *testing.T) {
		it := NewInterpreter()
		it.StartCard("card1", "todo")
		it.SetTarget(DropTarget{Kind: TargetCard, ColumnID: "todo", CardID: "card2", CardIndex: 1})

		op, ok := it.Drop()
		if !ok {
			t.Fatal("expected a resolved operation")
		}
		got, isWithin := op.(CardMoveWithin)
		if !isWithin || got.TargetIndex != 1 {
			t.Fatalf("resolved to %T %+v", op, op)
		}
	})

	t.Run("onto another column body appends", func(t *testing.T) {
		it := NewInterpreter()
		it.StartCard("card1", "todo")
		it.SetTarget(DropTarget{Kind: TargetColumn, ColumnID: "done"})

		op, ok := it.Drop()
		if !ok {
			t.Fatal("expected a resolved operation")
		}
		got := op.(CardMoveAcross)
		if got.DropIndex != -1 {
			t.Fatalf("drop index %d, want -1 for append", got.DropIndex)
		}
	})

	t.Run("onto its own column body cancels", func(t *testing.T) {
		it := NewInterpreter()
		it.StartCard("card1", "todo")
		it.SetTarget(DropTarget{Kind: TargetColumn, ColumnID: "todo"})

		if _, ok := it.Drop(); ok {
			t.Fatal("self drop must not produce an operation")
		}
		if it.State() != StateCancelled {
			t.Fatalf("state = %v, want cancelled", it.State())
		}
	})

	t.Run("cards cannot land on empty cells", func(t *testing.T) {
		it := NewInterpreter()
		it.StartCard("card1", "todo")
		it.SetTarget(DropTarget{Kind: TargetCell, Cell: models.GridPos{Row: 0, Col: 4}})

		if _, ok := it.Drop(); ok {
			t.Fatal("expected cancellation")
		}
	})
}

func TestColumnDropResolution(t *testing.T) {
	origin := models.GridPos{Row: 0, Col: 0}

	t.Run("occupied cell resolves to a swap", func(t *testing.T) {
		it := NewInterpreter()
		it.StartColumn("colA", origin)
		it.SetTarget(DropTarget{Kind: TargetColumn, ColumnID: "colB"})

		op, ok := it.Drop()
		if !ok {
			t.Fatal("expected a resolved operation")
		}
		got := op.(ColumnSwap)
		if got.ColumnID != "colA" || got.TargetID != "colB" {
			t.Fatalf("unexpected swap %+v", got)
		}
	})

	t.Run("empty cell resolves to insert with shift", func(t *testing.T) {
		it := NewInterpreter()
		it.StartColumn("colA", origin)
		it.SetTarget(DropTarget{Kind: TargetCell, Cell: models.GridPos{Row: 1, Col: 2}})

		op, _ := it.Drop()
		got := op.(ColumnInsertShift)
		if got.Target != (models.GridPos{Row: 1, Col: 2}) {
			t.Fatalf("unexpected target %+v", got.Target)
		}
	})

	t.Run("new row affordance", func(t *testing.T) {
		it := NewInterpreter()
		it.StartColumn("colA", origin)
		it.SetTarget(DropTarget{Kind: TargetNewRow, NewRowCol: 0})

		op, _ := it.Drop()
		got := op.(ColumnMoveToNewRow)
		if got.ColumnID != "colA" || got.TargetCol != 0 {
			t.Fatalf("unexpected operation %+v", got)
		}
	})

	t.Run("dropping a column on itself cancels", func(t *testing.T) {
		it := NewInterpreter()
		it.StartColumn("colA", origin)
		it.SetTarget(DropTarget{Kind: TargetColumn, ColumnID: "colA"})

		if _, ok := it.Drop(); ok {
			t.Fatal("self drop must not produce an operation")
		}
	})

	t.Run("columns cannot land on cards", func(t *testing.T) {
		it := NewInterpreter()
		it.StartColumn("colA", origin)
		it.SetTarget(DropTarget{Kind: TargetCard, ColumnID: "colB", CardID: "card1", CardIndex: 0})

		if _, ok := it.Drop(); ok {
			t.Fatal("expected cancellation")
		}
	})
}

func TestDragLifecycle(t *testing.T) {
	it := NewInterpreter()

	if it.Dragging() {
		t.Fatal("fresh interpreter should be idle")
	}

	it.StartCard("card1", "todo")
	if !it.Dragging() || it.Kind() != models.DragCard {
		t.Fatal("expected a card drag in progress")
	}
	if it.DraggedID() != "card1" {
		t.Fatalf("dragged id = %q", it.DraggedID())
	}

	// No target under the drag: dropping cancels.
	if _, ok := it.Drop(); ok {
		t.Fatal("drop without a target must cancel")
	}

	it.Reset()
	if it.State() != StateIdle {
		t.Fatalf("state after reset = %v, want idle", it.State())
	}

	it.StartColumn("colA", models.GridPos{})
	it.Cancel()
	if it.State() != StateCancelled {
		t.Fatalf("state = %v, want cancelled", it.State())
	}

	// Drop after cancel stays inert.
	if _, ok := it.Drop(); ok {
		t.Fatal("cancelled drag must not resolve")
	}
}

func TestClearTarget(t *testing.T) {
	it := NewInterpreter()
	it.StartCard("card1", "todo")
	it.SetTarget(DropTarget{Kind: TargetColumn, ColumnID: "done"})
	it.ClearTarget()

	if _, ok := it.Target(); ok {
		t.Fatal("target should be cleared")
	}
	if _, ok := it.Drop(); ok {
		t.Fatal("drop with a cleared target must cancel")
	}
}
