package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/gitbox-sub002/internal/config"
)

const columnWidth = 30

// styles is the lipgloss style set derived from the configured theme.
type styles struct {
	column     lipgloss.Style
	selected   lipgloss.Style
	dragging   lipgloss.Style
	dropTarget lipgloss.Style

	columnTitle lipgloss.Style
	wipOK       lipgloss.Style
	wipOver     lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardDragged  lipgloss.Style

	muted  lipgloss.Style
	notice lipgloss.Style
	errMsg lipgloss.Style
	help   lipgloss.Style
}

func newStyles(t config.Theme) styles {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(columnWidth).
		Padding(0, 1)

	return styles{
		column:     base,
		selected:   base.BorderForeground(lipgloss.Color(t.Selected)),
		dragging:   base.BorderForeground(lipgloss.Color(t.Dragging)),
		dropTarget: base.BorderForeground(lipgloss.Color(t.DropTarget)),

		columnTitle: lipgloss.NewStyle().Bold(true),
		wipOK:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		wipOver:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.WIPExceeded)).Bold(true),

		card:         lipgloss.NewStyle(),
		cardSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Selected)).Bold(true),
		cardDragged:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dragging)).Italic(true),

		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		notice: lipgloss.NewStyle().Foreground(lipgloss.Color(t.DropTarget)),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color(t.WIPExceeded)).Bold(true),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
	}
}
