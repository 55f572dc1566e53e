package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.mode == modeDetail {
		return m.detailContent + "\n" + m.styles.help.Render("esc close")
	}

	var b strings.Builder

	title := "gitbox"
	if m.filterActive {
		title += "  (filter: " + m.filterQuery + ")"
	}
	b.WriteString(m.styles.columnTitle.Render(title))
	b.WriteString("\n\n")

	rows := m.rows()
	for r, row := range rows {
		cells := make([]string, 0, len(row)+1)
		for c, col := range row {
			cells = append(cells, m.renderColumn(col, r, c))
		}
		if cell := m.renderEmptyCell(r, len(row)); cell != "" {
			cells = append(cells, cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if line := m.renderNewRow(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderColumn(col *models.Column, row, idx int) string {
	model := m.session.Model()
	cards := model.CardsIn(col.ID)
	count := len(cards)
	if m.filterActive && m.filterQuery != "" {
		cards = filterCards(cards, m.filterQuery)
	}

	var b strings.Builder
	b.WriteString(m.styles.columnTitle.Render(truncate(col.Title, columnWidth-8)))
	b.WriteString(" ")
	b.WriteString(m.renderWIP(col, count))
	b.WriteString("\n")

	if len(cards) == 0 {
		b.WriteString(m.styles.muted.Render("(empty)"))
	}
	for i, card := range cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderCard(card, row, idx, i))
	}

	return m.columnBorder(col, row, idx).Render(b.String())
}

// columnBorder picks the border style: the dragged column, the candidate
// drop zone, the selection, or nothing.
func (m Model) columnBorder(col *models.Column, row, idx int) lipgloss.Style {
	if m.mode == modeDragging {
		if m.drag.Kind() == models.DragColumn && m.drag.DraggedID() == col.ID {
			return m.styles.dragging
		}
		if !m.target.newRow && m.target.row == row && m.target.col == idx {
			return m.styles.dropTarget
		}
		return m.styles.column
	}
	if m.selRow == row && m.selCol == idx {
		return m.styles.selected
	}
	return m.styles.column
}

func (m Model) renderWIP(col *models.Column, count int) string {
	if col.WIPLimit == nil {
		return m.styles.wipOK.Render(fmt.Sprintf("%d", count))
	}
	label := fmt.Sprintf("%d/%d", count, *col.WIPLimit)
	if count > *col.WIPLimit {
		return m.styles.wipOver.Render(label + " !")
	}
	return m.styles.wipOK.Render(label)
}

func (m Model) renderCard(card *models.Card, row, colIdx, cardIdx int) string {
	label := truncate(card.Title, columnWidth-6)
	if card.Stars > 0 {
		label = truncate(card.Title, columnWidth-12) + fmt.Sprintf(" ★%d", card.Stars)
	}

	if m.mode == modeDragging && m.drag.Kind() == models.DragCard {
		if m.drag.DraggedID() == card.ID {
			return m.styles.cardDragged.Render("~ " + label)
		}
		if m.target.row == row && m.target.col == colIdx && m.target.cardIndex == cardIdx {
			return m.styles.notice.Render("> " + label)
		}
		return m.styles.card.Render("  " + label)
	}

	if m.mode == modeNormal && m.selRow == row && m.selCol == colIdx && m.selCard == cardIdx {
		return m.styles.cardSelected.Render("> " + label)
	}
	return m.styles.card.Render("  " + label)
}

// renderEmptyCell draws the one-past-the-end cell while a column drag
// targets it.
func (m Model) renderEmptyCell(row, rowLen int) string {
	if m.mode != modeDragging || m.drag.Kind() != models.DragColumn {
		return ""
	}
	if m.target.newRow || m.target.row != row || m.target.col != rowLen {
		return ""
	}
	return m.styles.dropTarget.Render(m.styles.muted.Render("drop here"))
}

// renderNewRow draws the new-row affordance while a column drag is active.
func (m Model) renderNewRow() string {
	if m.mode != modeDragging || m.drag.Kind() != models.DragColumn {
		return ""
	}
	label := "+ new row"
	if m.target.newRow {
		return m.styles.dropTarget.Render(label)
	}
	return m.styles.muted.Render(label)
}

func (m Model) renderFooter() string {
	var lines []string

	if m.notification != "" {
		style := m.styles.notice
		if m.notifyLevel == notifyError {
			style = m.styles.errMsg
		}
		lines = append(lines, style.Render(m.notification))
	}

	switch m.mode {
	case modeInput, modeFilter:
		lines = append(lines, m.input.View())
	case modeConfirmDelete:
		lines = append(lines, m.styles.errMsg.Render("Delete "+m.deletingWhat+"? (y/n)"))
	case modeDragging:
		if m.drag.Kind() == models.DragColumn {
			help := "h/l/j/k target  i insert  enter drop  esc cancel"
			if m.target.insertMode {
				help = "[insert] " + help
			}
			lines = append(lines, m.styles.help.Render(help))
		} else {
			lines = append(lines, m.styles.help.Render("h/l column  j/k position  enter drop  esc cancel"))
		}
	default:
		lines = append(lines, m.styles.help.Render("a add  e edit  d delete  enter view  space move  c move column  u undo  / filter  q quit"))
	}

	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if n < 1 {
		n = 1
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
