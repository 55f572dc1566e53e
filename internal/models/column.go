package models

// Column represents one status lane on a board (e.g. "Backlog", "In Review").
// Columns are laid out on a 2D grid: GridRow/GridCol locate the column on the
// board, and no two columns of the same board occupy the same cell at rest.
type Column struct {
	ID       string // UUID
	BoardID  string
	Title    string
	Color    string // hex color used for the column header
	WIPLimit *int   // advisory max card count, nil = unlimited
	GridRow  int
	GridCol  int
}

// Pos returns the grid cell this column occupies.
func (c *Column) Pos() GridPos {
	return GridPos{Row: c.GridRow, Col: c.GridCol}
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	cp := *c
	if c.WIPLimit != nil {
		limit := *c.WIPLimit
		cp.WIPLimit = &limit
	}
	return &cp
}

// CloneColumns deep-copies a column slice. Used for undo snapshots, where a
// later in-place edit must not leak into a captured snapshot.
func CloneColumns(columns []*Column) []*Column {
	out := make([]*Column, len(columns))
	for i, c := range columns {
		out[i] = c.Clone()
	}
	return out
}
