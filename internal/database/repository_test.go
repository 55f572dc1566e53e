package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/models"
	"github.com/laststance/gitbox-sub002/internal/testutil"
)

func setup(t *testing.T) (context.Context, *database.Repository, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return context.Background(), database.NewRepository(db), testutil.SeededBoardID(t, db)
}

func TestSeededBoard(t *testing.T) {
	ctx, repo, boardID := setup(t)

	boards, err := repo.GetAllBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Equal(t, "Repositories", boards[0].Name)

	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)
	require.Len(t, columns, 4)

	// Grid order: row 0, columns 0..3.
	for i, col := range columns {
		require.Equal(t, 0, col.GridRow)
		require.Equal(t, i, col.GridCol)
	}
	require.Equal(t, "Backlog", columns[0].Title)
	require.Equal(t, "Done", columns[3].Title)
}

func TestBoardCRUD(t *testing.T) {
	ctx, repo, _ := setup(t)

	board, err := repo.CreateBoard(ctx, "Experiments")
	require.NoError(t, err)
	require.NotEmpty(t, board.ID)

	got, err := repo.GetBoardByID(ctx, board.ID)
	require.NoError(t, err)
	require.Equal(t, "Experiments", got.Name)

	require.NoError(t, repo.RenameBoard(ctx, board.ID, "Archive"))
	got, err = repo.GetBoardByID(ctx, board.ID)
	require.NoError(t, err)
	require.Equal(t, "Archive", got.Name)

	require.NoError(t, repo.DeleteBoard(ctx, board.ID))
	_, err = repo.GetBoardByID(ctx, board.ID)
	require.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestCardCRUD(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	card := &models.Card{
		StatusID:     columns[0].ID,
		Order:        0,
		Title:        "charmbracelet/bubbletea",
		RepoFullName: "charmbracelet/bubbletea",
	}
	require.NoError(t, repo.CreateCard(ctx, card))
	require.NotEmpty(t, card.ID)

	got, err := repo.GetCardByID(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, card.Title, got.Title)
	require.Equal(t, columns[0].ID, got.StatusID)

	require.NoError(t, repo.UpdateCard(ctx, card.ID, "bubbletea", "try the v2 API"))
	got, err = repo.GetCardByID(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, "bubbletea", got.Title)
	require.Equal(t, "try the v2 API", got.Notes)

	require.NoError(t, repo.UpdateCardMetadata(ctx, card.ID, "A powerful TUI framework", "Go", 27000))
	got, err = repo.GetCardByID(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, 27000, got.Stars)
	require.Equal(t, "Go", got.Language)

	require.NoError(t, repo.DeleteCard(ctx, card.ID))
	_, err = repo.GetCardByID(ctx, card.ID)
	require.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestCardNotFoundOnWrites(t *testing.T) {
	ctx, repo, _ := setup(t)

	require.ErrorIs(t, repo.UpdateCard(ctx, "missing", "t", ""), models.ErrCardNotFound)
	require.ErrorIs(t, repo.DeleteCard(ctx, "missing"), models.ErrCardNotFound)
	require.ErrorIs(t, repo.UpdateCardPosition(ctx, "missing", "col", 0), models.ErrCardNotFound)
}

func TestFetchCardsOrdering(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	// Insert out of order; the fetch must come back sorted within the column.
	for _, order := range []int{2, 0, 1} {
		require.NoError(t, repo.CreateCard(ctx, &models.Card{
			StatusID: columns[0].ID,
			Order:    order,
			Title:    string(rune('a' + order)),
		}))
	}

	cards, err := repo.FetchCards(ctx, boardID)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	for i, c := range cards {
		require.Equal(t, i, c.Order)
	}
}

func TestUpdateCardPosition(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	card := &models.Card{StatusID: columns[0].ID, Order: 0, Title: "x"}
	require.NoError(t, repo.CreateCard(ctx, card))

	require.NoError(t, repo.UpdateCardPosition(ctx, card.ID, columns[2].ID, 5))

	got, err := repo.GetCardByID(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, columns[2].ID, got.StatusID)
	require.Equal(t, 5, got.Order)
}

func TestBatchUpdateCardOrders(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 3; i++ {
		card := &models.Card{StatusID: columns[0].ID, Order: i, Title: "x"}
		require.NoError(t, repo.CreateCard(ctx, card))
		ids = append(ids, card.ID)
	}

	// Reverse the column.
	updates := []database.CardOrderUpdate{
		{CardID: ids[0], StatusID: columns[0].ID, Order: 2},
		{CardID: ids[1], StatusID: columns[0].ID, Order: 1},
		{CardID: ids[2], StatusID: columns[0].ID, Order: 0},
	}
	require.NoError(t, repo.BatchUpdateCardOrders(ctx, updates))

	cards, err := repo.FetchCards(ctx, boardID)
	require.NoError(t, err)
	require.Equal(t, ids[2], cards[0].ID)
	require.Equal(t, ids[0], cards[2].ID)

	// An empty batch is a no-op, not an error.
	require.NoError(t, repo.BatchUpdateCardOrders(ctx, nil))
}

func TestColumnCRUD(t *testing.T) {
	ctx, repo, boardID := setup(t)

	wip := 3
	col, err := repo.CreateColumn(ctx, boardID, "Review", "#bc8cff", &wip, 1, 0)
	require.NoError(t, err)

	got, err := repo.GetColumnByID(ctx, col.ID)
	require.NoError(t, err)
	require.Equal(t, "Review", got.Title)
	require.NotNil(t, got.WIPLimit)
	require.Equal(t, 3, *got.WIPLimit)
	require.Equal(t, 1, got.GridRow)

	require.NoError(t, repo.UpdateColumn(ctx, col.ID, "In Review", "#bc8cff", nil))
	got, err = repo.GetColumnByID(ctx, col.ID)
	require.NoError(t, err)
	require.Equal(t, "In Review", got.Title)
	require.Nil(t, got.WIPLimit)

	require.NoError(t, repo.DeleteColumn(ctx, col.ID))
	_, err = repo.GetColumnByID(ctx, col.ID)
	require.ErrorIs(t, err, models.ErrColumnNotFound)
}

func TestDeleteColumnCascadesCards(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	card := &models.Card{StatusID: columns[0].ID, Order: 0, Title: "x"}
	require.NoError(t, repo.CreateCard(ctx, card))

	require.NoError(t, repo.DeleteColumn(ctx, columns[0].ID))

	_, err = repo.GetCardByID(ctx, card.ID)
	require.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestSwapColumnPositions(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	a, b := columns[0], columns[3]
	require.NoError(t, repo.SwapColumnPositions(ctx, a.ID, b.ID))

	gotA, err := repo.GetColumnByID(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := repo.GetColumnByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.GridCol, gotA.GridCol)
	require.Equal(t, a.GridCol, gotB.GridCol)

	require.ErrorIs(t, repo.SwapColumnPositions(ctx, a.ID, "missing"), models.ErrColumnNotFound)
}

func TestBatchUpdateColumnPositions(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	// Shift every column one cell to the right.
	var updates []database.ColumnPositionUpdate
	for _, c := range columns {
		updates = append(updates, database.ColumnPositionUpdate{
			ColumnID: c.ID, GridRow: c.GridRow, GridCol: c.GridCol + 1,
		})
	}
	require.NoError(t, repo.BatchUpdateColumnPositions(ctx, updates))

	shifted, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)
	for i, c := range shifted {
		require.Equal(t, i+1, c.GridCol)
	}
}

func TestUpdateColumnPosition(t *testing.T) {
	ctx, repo, boardID := setup(t)
	columns, err := repo.FetchColumns(ctx, boardID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateColumnPosition(ctx, columns[1].ID, 1, 0))

	got, err := repo.GetColumnByID(ctx, columns[1].ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.GridRow)
	require.Equal(t, 0, got.GridCol)
}
