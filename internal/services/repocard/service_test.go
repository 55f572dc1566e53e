package repocard_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/services/repocard"
	"github.com/laststance/gitbox-sub002/internal/testutil"
)

// fakeLookup serves canned repository metadata.
type fakeLookup struct {
	info *repocard.RepoInfo
	err  error
}

func (f *fakeLookup) LookupRepo(ctx context.Context, fullName string) (*repocard.RepoInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func setup(t *testing.T, lookup repocard.RepoLookup) (context.Context, repocard.Service, *database.Repository, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	svc := repocard.NewService(repo, lookup)

	ctx := context.Background()
	columns, err := repo.FetchColumns(ctx, testutil.SeededBoardID(t, db))
	require.NoError(t, err)
	return ctx, svc, repo, columns[0].ID
}

func TestCreateCardWithMetadata(t *testing.T) {
	lookup := &fakeLookup{info: &repocard.RepoInfo{
		FullName:    "charmbracelet/lipgloss",
		URL:         "https://github.com/charmbracelet/lipgloss",
		Description: "Style definitions for nice terminal layouts",
		Stars:       8000,
		Language:    "Go",
	}}
	ctx, svc, _, statusID := setup(t, lookup)

	card, err := svc.CreateCard(ctx, repocard.CreateCardRequest{
		StatusID:     statusID,
		Title:        "charmbracelet/lipgloss",
		RepoFullName: "charmbracelet/lipgloss",
	})
	require.NoError(t, err)
	require.Equal(t, "Go", card.Language)
	require.Equal(t, 8000, card.Stars)
	require.Equal(t, "https://github.com/charmbracelet/lipgloss", card.RepoURL)
}

func TestCreateCardLookupFailureIsNotFatal(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("rate limited")}
	ctx, svc, _, statusID := setup(t, lookup)

	card, err := svc.CreateCard(ctx, repocard.CreateCardRequest{
		StatusID:     statusID,
		Title:        "owner/repo",
		RepoFullName: "owner/repo",
	})
	require.NoError(t, err)
	require.Equal(t, "owner/repo", card.RepoFullName)
	require.Zero(t, card.Stars)
}

func TestCreateCardWithoutLookup(t *testing.T) {
	ctx, svc, _, statusID := setup(t, nil)

	card, err := svc.CreateCard(ctx, repocard.CreateCardRequest{
		StatusID: statusID,
		Title:    "plain note",
	})
	require.NoError(t, err)
	require.Empty(t, card.RepoFullName)
}

func TestCreateCardValidation(t *testing.T) {
	ctx, svc, _, statusID := setup(t, nil)

	_, err := svc.CreateCard(ctx, repocard.CreateCardRequest{StatusID: statusID, Title: ""})
	require.ErrorIs(t, err, repocard.ErrEmptyTitle)

	_, err = svc.CreateCard(ctx, repocard.CreateCardRequest{StatusID: statusID, Title: strings.Repeat("x", 256)})
	require.ErrorIs(t, err, repocard.ErrTitleTooLong)

	_, err = svc.CreateCard(ctx, repocard.CreateCardRequest{StatusID: "", Title: "ok"})
	require.ErrorIs(t, err, repocard.ErrInvalidColumnID)

	_, err = svc.CreateCard(ctx, repocard.CreateCardRequest{StatusID: statusID, Title: "ok", Order: -1})
	require.ErrorIs(t, err, repocard.ErrInvalidPosition)

	_, err = svc.CreateCard(ctx, repocard.CreateCardRequest{StatusID: statusID, Title: "ok", RepoFullName: "no-slash"})
	require.ErrorIs(t, err, repocard.ErrInvalidRepoName)
}

func TestUpdateCardPartial(t *testing.T) {
	ctx, svc, repo, statusID := setup(t, nil)

	card, err := svc.CreateCard(ctx, repocard.CreateCardRequest{
		StatusID: statusID, Title: "original", Notes: "keep me",
	})
	require.NoError(t, err)

	title := "renamed"
	require.NoError(t, svc.UpdateCard(ctx, repocard.UpdateCardRequest{CardID: card.ID, Title: &title}))

	got, err := repo.GetCardByID(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Title)
	// The untouched field survives the partial update.
	require.Equal(t, "keep me", got.Notes)

	require.ErrorIs(t, svc.UpdateCard(ctx, repocard.UpdateCardRequest{CardID: ""}), repocard.ErrInvalidCardID)
}

func TestRefreshMetadata(t *testing.T) {
	lookup := &fakeLookup{info: &repocard.RepoInfo{Description: "desc", Language: "Go", Stars: 42}}
	ctx, svc, repo, statusID := setup(t, lookup)

	noRepo, err := svc.CreateCard(ctx, repocard.CreateCardRequest{StatusID: statusID, Title: "note"})
	require.NoError(t, err)
	require.ErrorIs(t, svc.RefreshMetadata(ctx, noRepo.ID), repocard.ErrNoRepoReference)

	card, err := svc.CreateCard(ctx, repocard.CreateCardRequest{
		StatusID: statusID, Title: "owner/repo", RepoFullName: "owner/repo",
	})
	require.NoError(t, err)
	require.NoError(t, svc.RefreshMetadata(ctx, card.ID))

	got, err := repo.GetCardByID(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, 42, got.Stars)
	require.Equal(t, "Go", got.Language)
}
