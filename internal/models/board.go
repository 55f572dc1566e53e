package models

import "time"

// Board is a named collection of columns and cards.
type Board struct {
	ID        string // UUID
	Name      string
	CreatedAt time.Time
}
