package tui

import (
	"github.com/laststance/gitbox-sub002/internal/board"
	"github.com/laststance/gitbox-sub002/internal/models"
)

// syncResultMsg reports that a pending operation's remote writes finished.
type syncResultMsg struct {
	pending *board.Pending
	err     error
}

// cardCreatedMsg reports the outcome of an async card creation.
type cardCreatedMsg struct {
	card *models.Card
	err  error
}

// cardMutatedMsg reports the outcome of an async card edit or delete.
type cardMutatedMsg struct {
	err error
}

// columnMutatedMsg reports the outcome of an async column create or delete.
type columnMutatedMsg struct {
	err error
}

// refreshedMsg reports that the session reloaded its layout from the store.
type refreshedMsg struct {
	err error
}

// metadataRefreshedMsg reports the outcome of a GitHub metadata refresh.
type metadataRefreshedMsg struct {
	err error
}
