package status_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/services/status"
	"github.com/laststance/gitbox-sub002/internal/testutil"
)

func setup(t *testing.T) (context.Context, status.Service, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	return context.Background(), status.NewService(repo), testutil.SeededBoardID(t, db)
}

func TestCreateColumnPlacement(t *testing.T) {
	ctx, svc, boardID := setup(t)

	// The seeded board ends at (0, 3); a new column continues the row.
	col, err := svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: boardID, Title: "Review"})
	require.NoError(t, err)
	require.Equal(t, 0, col.GridRow)
	require.Equal(t, 4, col.GridCol)

	next, err := svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: boardID, Title: "Blocked"})
	require.NoError(t, err)
	require.Equal(t, 5, next.GridCol)
}

func TestCreateColumnValidation(t *testing.T) {
	ctx, svc, boardID := setup(t)

	_, err := svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: boardID, Title: ""})
	require.ErrorIs(t, err, status.ErrEmptyTitle)

	_, err = svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: boardID, Title: strings.Repeat("x", 101)})
	require.ErrorIs(t, err, status.ErrTitleTooLong)

	_, err = svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: "", Title: "ok"})
	require.ErrorIs(t, err, status.ErrInvalidBoardID)

	wip := -1
	_, err = svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: boardID, Title: "ok", WIPLimit: &wip})
	require.ErrorIs(t, err, status.ErrNegativeWIP)
}

func TestUpdateColumn(t *testing.T) {
	ctx, svc, boardID := setup(t)

	wip := 4
	col, err := svc.CreateColumn(ctx, status.CreateColumnRequest{
		BoardID: boardID, Title: "Review", WIPLimit: &wip,
	})
	require.NoError(t, err)

	title := "In Review"
	require.NoError(t, svc.UpdateColumn(ctx, status.UpdateColumnRequest{ColumnID: col.ID, Title: &title}))

	columns, err := svc.ListColumns(ctx, boardID)
	require.NoError(t, err)
	updated := columns[len(columns)-1]
	require.Equal(t, "In Review", updated.Title)
	// Untouched fields survive the partial update.
	require.NotNil(t, updated.WIPLimit)
	require.Equal(t, 4, *updated.WIPLimit)

	require.NoError(t, svc.UpdateColumn(ctx, status.UpdateColumnRequest{ColumnID: col.ID, ClearWIP: true}))
	columns, err = svc.ListColumns(ctx, boardID)
	require.NoError(t, err)
	require.Nil(t, columns[len(columns)-1].WIPLimit)
}

func TestDeleteColumn(t *testing.T) {
	ctx, svc, boardID := setup(t)

	col, err := svc.CreateColumn(ctx, status.CreateColumnRequest{BoardID: boardID, Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteColumn(ctx, col.ID))
	require.ErrorIs(t, svc.DeleteColumn(ctx, ""), status.ErrInvalidID)

	columns, err := svc.ListColumns(ctx, boardID)
	require.NoError(t, err)
	require.Len(t, columns, 4)
}
