package models

import "time"

// Card represents a GitHub repository pinned to a board column.
// Order is a sort key within the card's column, not a slot index: gaps and
// non-contiguous values are fine, only the relative ordering matters.
type Card struct {
	ID       string // UUID
	StatusID string // column this card currently belongs to
	Order    int

	Title        string
	Notes        string // free-form markdown notes
	RepoFullName string // "owner/name", empty for manual cards
	RepoURL      string

	// Metadata captured from GitHub at card creation; refreshed on demand.
	Description string
	Stars       int
	Language    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// CloneCards deep-copies a card slice.
func CloneCards(cards []*Card) []*Card {
	out := make([]*Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
