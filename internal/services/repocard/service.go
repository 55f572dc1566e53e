// Package repocard implements business operations on repository cards.
package repocard

import (
	"context"
	"fmt"
	"strings"

	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/models"
)

// RepoLookup resolves a "owner/name" reference to repository metadata.
// Implemented by the github client; nil disables enrichment.
type RepoLookup interface {
	LookupRepo(ctx context.Context, fullName string) (*RepoInfo, error)
}

// RepoInfo is the metadata captured onto a card.
type RepoInfo struct {
	FullName    string
	URL         string
	Description string
	Stars       int
	Language    string
}

// Service defines all card-related business operations
type Service interface {
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) error
	DeleteCard(ctx context.Context, cardID string) error

	// RefreshMetadata re-fetches the card's repository metadata.
	RefreshMetadata(ctx context.Context, cardID string) error
}

// CreateCardRequest encapsulates all data needed to create a card.
// Order is the position within the destination column; the caller computes
// it from the live board (typically the current card count).
type CreateCardRequest struct {
	StatusID     string
	Title        string
	Notes        string
	RepoFullName string // optional; "owner/name" triggers metadata lookup
	Order        int
}

// UpdateCardRequest encapsulates a card update.
// Pointer fields are optional - nil means don't update.
type UpdateCardRequest struct {
	CardID string
	Title  *string
	Notes  *string
}

// service implements the Service interface
type service struct {
	repo   database.DataStore
	lookup RepoLookup
}

// NewService creates a new card service. lookup may be nil, in which case
// cards are created without repository metadata.
func NewService(repo database.DataStore, lookup RepoLookup) Service {
	return &service{repo: repo, lookup: lookup}
}

// CreateCard validates the request, optionally resolves repository metadata,
// and inserts the card.
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if req.StatusID == "" {
		return nil, ErrInvalidColumnID
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.Order < 0 {
		return nil, ErrInvalidPosition
	}

	card := &models.Card{
		StatusID: req.StatusID,
		Order:    req.Order,
		Title:    req.Title,
		Notes:    req.Notes,
	}

	if req.RepoFullName != "" {
		if !strings.Contains(req.RepoFullName, "/") {
			return nil, ErrInvalidRepoName
		}
		card.RepoFullName = req.RepoFullName
		if s.lookup != nil {
			// Lookup failure is not fatal to card creation: the reference is
			// kept and metadata can be refreshed later.
			if info, err := s.lookup.LookupRepo(ctx, req.RepoFullName); err == nil {
				card.RepoURL = info.URL
				card.Description = info.Description
				card.Stars = info.Stars
				card.Language = info.Language
				if card.Title == req.RepoFullName && info.FullName != "" {
					card.Title = info.FullName
				}
			}
		}
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return card, nil
}

// UpdateCard updates title and notes as requested.
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) error {
	if req.CardID == "" {
		return ErrInvalidCardID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}

	current, err := s.repo.GetCardByID(ctx, req.CardID)
	if err != nil {
		return fmt.Errorf("failed to get card: %w", err)
	}

	title := current.Title
	if req.Title != nil {
		title = *req.Title
	}
	notes := current.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := s.repo.UpdateCard(ctx, req.CardID, title, notes); err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	return nil
}

// DeleteCard removes a card.
func (s *service) DeleteCard(ctx context.Context, cardID string) error {
	if cardID == "" {
		return ErrInvalidCardID
	}
	if err := s.repo.DeleteCard(ctx, cardID); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

// RefreshMetadata re-resolves the card's repository reference and stores the
// fresh metadata.
func (s *service) RefreshMetadata(ctx context.Context, cardID string) error {
	if cardID == "" {
		return ErrInvalidCardID
	}
	if s.lookup == nil {
		return ErrNoRepoReference
	}

	card, err := s.repo.GetCardByID(ctx, cardID)
	if err != nil {
		return fmt.Errorf("failed to get card: %w", err)
	}
	if card.RepoFullName == "" {
		return ErrNoRepoReference
	}

	info, err := s.lookup.LookupRepo(ctx, card.RepoFullName)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", card.RepoFullName, err)
	}

	if err := s.repo.UpdateCardMetadata(ctx, cardID, info.Description, info.Language, info.Stars); err != nil {
		return fmt.Errorf("failed to store metadata: %w", err)
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > 255 {
		return ErrTitleTooLong
	}
	return nil
}
