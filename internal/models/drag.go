package models

import "time"

// GridPos is a (row, column) cell on the board layout grid.
type GridPos struct {
	Row int
	Col int
}

// DragKind classifies what is being dragged.
type DragKind int

const (
	DragColumn DragKind = iota
	DragCard
)

func (k DragKind) String() string {
	switch k {
	case DragColumn:
		return "column"
	case DragCard:
		return "card"
	default:
		return "unknown"
	}
}

// DragOperation records a resolved drag-and-drop move. It is created the
// moment a drop resolves to a concrete operation and consumed by the undo
// layer; it is never persisted.
type DragOperation struct {
	Kind DragKind
	ID   string // card or column ID, depending on Kind
	From GridPos
	To   GridPos
	At   time.Time
}
