package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/gitbox-sub002/internal/board"
	"github.com/laststance/gitbox-sub002/internal/models"
	"github.com/laststance/gitbox-sub002/internal/services/repocard"
	"github.com/laststance/gitbox-sub002/internal/services/status"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case syncResultMsg:
		state := m.ctrl.Finish(msg.pending, msg.err)
		if state == board.OpRemoteFailed {
			m.notify(notifyError, "Move could not be saved - change reverted")
		}
		m.clampSelection()
		return m, nil

	case cardCreatedMsg:
		if msg.err != nil {
			m.notify(notifyError, "Failed to create card: "+msg.err.Error())
			return m, nil
		}
		return m, m.refreshCmd()

	case cardMutatedMsg:
		if msg.err != nil {
			m.notify(notifyError, msg.err.Error())
			return m, nil
		}
		return m, m.refreshCmd()

	case columnMutatedMsg:
		if msg.err != nil {
			m.notify(notifyError, msg.err.Error())
			return m, nil
		}
		return m, m.refreshCmd()

	case metadataRefreshedMsg:
		if msg.err != nil {
			m.notify(notifyError, "Could not refresh repository metadata")
			return m, nil
		}
		m.notify(notifyInfo, "Repository metadata refreshed")
		return m, m.refreshCmd()

	case refreshedMsg:
		if msg.err != nil {
			m.notify(notifyError, "Failed to reload board")
			return m, nil
		}
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		// Any keypress dismisses the transient notification.
		m.notification = ""

		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		case modeDragging:
			return m.updateDragging(msg)
		case modeInput:
			return m.updateInput(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.KeyMappings
	key := msg.String()

	switch key {
	case keys.Quit, "ctrl+c":
		m.session.Close()
		return m, tea.Quit

	case keys.Left, "left":
		if m.selCol > 0 {
			m.selCol--
			m.selCard = 0
		}
	case keys.Right, "right":
		if row := m.rowAt(m.selRow); m.selCol < len(row)-1 {
			m.selCol++
			m.selCard = 0
		}
	case keys.Up, "up":
		if m.selCard > 0 {
			m.selCard--
		}
	case keys.Down, "down":
		if m.selCard < len(m.currentCards())-1 {
			m.selCard++
		}
	case "tab":
		if m.selRow < len(m.rows())-1 {
			m.selRow++
			m.selCol, m.selCard = 0, 0
		}
	case "shift+tab":
		if m.selRow > 0 {
			m.selRow--
			m.selCol, m.selCard = 0, 0
		}

	case keys.PickUp:
		card := m.currentCard()
		col := m.currentColumn()
		if card == nil || col == nil {
			return m, nil
		}
		m.drag.StartCard(card.ID, col.ID)
		m.target = dragTarget{row: m.selRow, col: m.selCol, cardIndex: m.selCard}
		m.mode = modeDragging

	case keys.PickUpLane:
		col := m.currentColumn()
		if col == nil {
			return m, nil
		}
		m.drag.StartColumn(col.ID, col.Pos())
		m.target = dragTarget{row: m.selRow, col: m.selCol, cardIndex: -1}
		m.mode = modeDragging

	case keys.Undo:
		pending, ok := m.ctrl.Undo()
		if !ok {
			m.notify(notifyInfo, "Nothing to undo")
			return m, nil
		}
		m.clampSelection()
		return m, m.syncCmd(pending)

	case keys.AddCard:
		if m.currentColumn() == nil {
			return m, nil
		}
		m.openInput(inputAddCard, "Add repository (owner/name or title)")

	case keys.EditCard:
		card := m.currentCard()
		if card == nil {
			return m, nil
		}
		m.editingCard = card.ID
		m.openInput(inputEditCard, "New title")
		m.input.SetValue(card.Title)

	case keys.DeleteCard:
		if m.currentCard() == nil {
			return m, nil
		}
		m.deletingWhat = "card"
		m.mode = modeConfirmDelete

	case keys.DeleteColumn:
		if m.currentColumn() == nil {
			return m, nil
		}
		m.deletingWhat = "column"
		m.mode = modeConfirmDelete

	case keys.CreateColumn:
		m.openInput(inputAddColumn, "Column title")

	case keys.ViewCard:
		card := m.currentCard()
		if card == nil {
			return m, nil
		}
		m.detailContent = renderCardDetail(card, m.width)
		m.mode = modeDetail

	case keys.RefreshRepo:
		card := m.currentCard()
		if card == nil {
			return m, nil
		}
		return m, m.refreshMetadataCmd(card.ID)

	case keys.Filter:
		m.mode = modeFilter
		m.input.Placeholder = "Filter cards"
		m.input.SetValue(m.filterQuery)
		m.input.Focus()

	case "esc":
		if m.filterActive {
			m.filterActive = false
			m.filterQuery = ""
			m.clampSelection()
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		value := m.input.Value()
		purpose := m.inputFor
		m.closeInput()
		if value == "" {
			return m, nil
		}
		switch purpose {
		case inputAddCard:
			col := m.currentColumn()
			if col == nil {
				return m, nil
			}
			order := m.session.Model().CountIn(col.ID)
			return m, m.createCardCmd(repocard.CreateCardRequest{
				StatusID:     col.ID,
				Title:        value,
				RepoFullName: repoReference(value),
				Order:        order,
			})
		case inputEditCard:
			return m, m.updateCardCmd(m.editingCard, value)
		case inputAddColumn:
			return m, m.createColumnCmd(status.CreateColumnRequest{
				BoardID: m.session.BoardID(),
				Title:   value,
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.detailContent = ""
		m.mode = modeNormal
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.input.SetValue("")
		m.mode = modeNormal
		return m, nil
	case "enter":
		m.filterQuery = m.input.Value()
		m.filterActive = m.filterQuery != ""
		m.input.Blur()
		m.input.SetValue("")
		m.mode = modeNormal
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		what := m.deletingWhat
		m.deletingWhat = ""
		m.mode = modeNormal
		switch what {
		case "card":
			if card := m.currentCard(); card != nil {
				return m, m.deleteCardCmd(card.ID)
			}
		case "column":
			if col := m.currentColumn(); col != nil {
				return m, m.deleteColumnCmd(col.ID)
			}
		}
	case "n", "N", "esc":
		m.deletingWhat = ""
		m.mode = modeNormal
	}
	return m, nil
}

func (m *Model) openInput(purpose inputPurpose, placeholder string) {
	m.inputFor = purpose
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	m.mode = modeInput
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeNormal
}

func (m Model) rowAt(row int) []*models.Column {
	rows := m.rows()
	if row < 0 || row >= len(rows) {
		return nil
	}
	return rows[row]
}
