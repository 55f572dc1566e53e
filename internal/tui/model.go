// Package tui implements the terminal user interface: a grid of kanban
// columns with keyboard-driven drag and drop, backed by the board engine.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/gitbox-sub002/internal/board"
	"github.com/laststance/gitbox-sub002/internal/board/gesture"
	"github.com/laststance/gitbox-sub002/internal/config"
	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/models"
	"github.com/laststance/gitbox-sub002/internal/services/repocard"
	"github.com/laststance/gitbox-sub002/internal/services/status"
)

// mode is the top-level input mode of the board view.
type mode int

const (
	modeNormal mode = iota
	modeDragging
	modeInput
	modeDetail
	modeFilter
	modeConfirmDelete
)

// inputPurpose says what the text input collects.
type inputPurpose int

const (
	inputAddCard inputPurpose = iota
	inputEditCard
	inputAddColumn
)

// notifyLevel is the severity of the transient notification line.
type notifyLevel int

const (
	notifyInfo notifyLevel = iota
	notifyError
)

// dragTarget is the keyboard drag cursor: which zone the pick-up would land
// on if dropped now.
type dragTarget struct {
	row        int
	col        int  // index within the row for columns, column index for cards
	cardIndex  int  // -1 targets the column body
	insertMode bool // column drags: insert-with-shift instead of swap
	newRow     bool // column drags: the new-row affordance
}

// Model represents the application state for the TUI
type Model struct {
	repo      database.DataStore
	cfg       *config.Config
	cardSvc   repocard.Service
	statusSvc status.Service

	session *board.Session
	ctrl    *board.Controller
	drag    *gesture.Interpreter

	mode   mode
	selRow int // selected grid row
	selCol int // selected column index within the row
	selCard int

	target dragTarget

	input        textinput.Model
	inputFor     inputPurpose
	editingCard  string // card ID under edit
	deletingWhat string // "card" or "column" for confirm mode

	filterQuery  string
	filterActive bool

	detailContent string

	notification string
	notifyLevel  notifyLevel

	width  int
	height int

	styles styles
}

// NewModel builds the TUI model around an open board session.
func NewModel(
	session *board.Session,
	repo database.DataStore,
	cfg *config.Config,
	cardSvc repocard.Service,
	statusSvc status.Service,
) Model {
	ti := textinput.New()
	ti.CharLimit = 255

	return Model{
		repo:      repo,
		cfg:       cfg,
		cardSvc:   cardSvc,
		statusSvc: statusSvc,
		session:   session,
		ctrl:      board.NewController(session, repo),
		drag:      gesture.NewInterpreter(),
		input:     ti,
		styles:    newStyles(cfg.Theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// opCtx returns the context used for a single store operation.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// rows returns the board's columns grouped by grid row, each row sorted by
// grid column.
func (m Model) rows() [][]*models.Column {
	model := m.session.Model()
	maxRow := model.MaxRow()
	var rows [][]*models.Column
	for r := 0; r <= maxRow; r++ {
		rows = append(rows, model.ColumnsInRow(r))
	}
	return rows
}

// currentColumn returns the selected column, or nil on an empty board.
func (m Model) currentColumn() *models.Column {
	rows := m.rows()
	if m.selRow >= len(rows) {
		return nil
	}
	row := rows[m.selRow]
	if m.selCol >= len(row) {
		return nil
	}
	return row[m.selCol]
}

// currentCards returns the cards of the selected column, filtered when a
// filter is active.
func (m Model) currentCards() []*models.Card {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	cards := m.session.Model().CardsIn(col.ID)
	if m.filterActive && m.filterQuery != "" {
		cards = filterCards(cards, m.filterQuery)
	}
	return cards
}

// currentCard returns the selected card, or nil.
func (m Model) currentCard() *models.Card {
	cards := m.currentCards()
	if len(cards) == 0 || m.selCard >= len(cards) {
		return nil
	}
	return cards[m.selCard]
}

// clampSelection keeps the selection valid after the layout changed.
func (m *Model) clampSelection() {
	rows := m.rows()
	if len(rows) == 0 {
		m.selRow, m.selCol, m.selCard = 0, 0, 0
		return
	}
	if m.selRow >= len(rows) {
		m.selRow = len(rows) - 1
	}
	row := rows[m.selRow]
	if len(row) == 0 {
		m.selCol, m.selCard = 0, 0
		return
	}
	if m.selCol >= len(row) {
		m.selCol = len(row) - 1
	}
	if n := len(m.currentCards()); m.selCard >= n {
		if n == 0 {
			m.selCard = 0
		} else {
			m.selCard = n - 1
		}
	}
}

// notify sets the transient notification line.
func (m *Model) notify(level notifyLevel, msg string) {
	m.notifyLevel = level
	m.notification = msg
}
