package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/gitbox-sub002/internal/board"
	"github.com/laststance/gitbox-sub002/internal/services/repocard"
	"github.com/laststance/gitbox-sub002/internal/services/status"
)

// syncCmd issues a pending operation's remote writes off the event loop.
func (m Model) syncCmd(p *board.Pending) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return syncResultMsg{pending: p, err: p.Sync(ctx)}
	}
}

// refreshCmd reloads the board layout from the store.
func (m Model) refreshCmd() tea.Cmd {
	session, store := m.session, m.repo
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return refreshedMsg{err: session.Refresh(ctx, store)}
	}
}

func (m Model) createCardCmd(req repocard.CreateCardRequest) tea.Cmd {
	svc := m.cardSvc
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		card, err := svc.CreateCard(ctx, req)
		return cardCreatedMsg{card: card, err: err}
	}
}

func (m Model) updateCardCmd(cardID, title string) tea.Cmd {
	svc := m.cardSvc
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		err := svc.UpdateCard(ctx, repocard.UpdateCardRequest{CardID: cardID, Title: &title})
		return cardMutatedMsg{err: err}
	}
}

func (m Model) deleteCardCmd(cardID string) tea.Cmd {
	svc := m.cardSvc
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return cardMutatedMsg{err: svc.DeleteCard(ctx, cardID)}
	}
}

func (m Model) createColumnCmd(req status.CreateColumnRequest) tea.Cmd {
	svc := m.statusSvc
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		_, err := svc.CreateColumn(ctx, req)
		return columnMutatedMsg{err: err}
	}
}

func (m Model) deleteColumnCmd(columnID string) tea.Cmd {
	svc := m.statusSvc
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return columnMutatedMsg{err: svc.DeleteColumn(ctx, columnID)}
	}
}

func (m Model) refreshMetadataCmd(cardID string) tea.Cmd {
	svc := m.cardSvc
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return metadataRefreshedMsg{err: svc.RefreshMetadata(ctx, cardID)}
	}
}
