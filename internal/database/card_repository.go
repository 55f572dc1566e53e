package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// CardRepo handles all card-related database operations, including the order
// writes the board engine issues after a reorder.
type CardRepo struct {
	db *sql.DB
}

const cardColumns = `id, status_id, sort_order, title, notes, repo_full_name,
	repo_url, description, stars, language, created_at, updated_at`

func scanCard(scanner interface{ Scan(...any) error }) (*models.Card, error) {
	c := &models.Card{}
	err := scanner.Scan(
		&c.ID, &c.StatusID, &c.Order, &c.Title, &c.Notes, &c.RepoFullName,
		&c.RepoURL, &c.Description, &c.Stars, &c.Language, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FetchCards returns all cards of a board, ordered within each column.
func (r *CardRepo) FetchCards(ctx context.Context, boardID string) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cardColumns+`
		FROM cards
		WHERE status_id IN (SELECT id FROM columns WHERE board_id = ?)
		ORDER BY status_id, sort_order`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying cards for board %s: %w", boardID, err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// CreateCard inserts a card. The caller assigns ID (generated here when
// empty), StatusID and Order.
func (r *CardRepo) CreateCard(ctx context.Context, card *models.Card) error {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	card.CreatedAt = now
	card.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cards (id, status_id, sort_order, title, notes, repo_full_name,
			repo_url, description, stars, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.ID, card.StatusID, card.Order, card.Title, card.Notes, card.RepoFullName,
		card.RepoURL, card.Description, card.Stars, card.Language, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}
	return nil
}

// GetCardByID returns one card, or models.ErrCardNotFound.
func (r *CardRepo) GetCardByID(ctx context.Context, id string) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+cardColumns+" FROM cards WHERE id = ?", id)
	c, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying card %s: %w", id, err)
	}
	return c, nil
}

// UpdateCard updates a card's title and notes.
func (r *CardRepo) UpdateCard(ctx context.Context, id, title, notes string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE cards SET title = ?, notes = ?, updated_at = ? WHERE id = ?",
		title, notes, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating card %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrCardNotFound)
}

// UpdateCardMetadata refreshes the GitHub-derived fields of a card.
func (r *CardRepo) UpdateCardMetadata(ctx context.Context, id, description, language string, stars int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE cards SET description = ?, language = ?, stars = ?, updated_at = ? WHERE id = ?",
		description, language, stars, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating metadata of card %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrCardNotFound)
}

// DeleteCard removes a card.
func (r *CardRepo) DeleteCard(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting card %s: %w", id, err)
	}
	return requireRowAffected(res, models.ErrCardNotFound)
}

// UpdateCardPosition persists one card's column and order.
func (r *CardRepo) UpdateCardPosition(ctx context.Context, cardID, statusID string, order int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE cards SET status_id = ?, sort_order = ?, updated_at = ? WHERE id = ?",
		statusID, order, time.Now().UTC(), cardID,
	)
	if err != nil {
		return fmt.Errorf("updating position of card %s: %w", cardID, err)
	}
	return requireRowAffected(res, models.ErrCardNotFound)
}

// BatchUpdateCardOrders applies a set of order writes atomically. Used for
// full-column renumbers and for persisting an undone layout in one shot.
func (r *CardRepo) BatchUpdateCardOrders(ctx context.Context, updates []CardOrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"UPDATE cards SET status_id = ?, sort_order = ?, updated_at = ? WHERE id = ?")
		if err != nil {
			return err
		}
		defer stmt.Close()

		now := time.Now().UTC()
		for _, u := range updates {
			if _, err := stmt.ExecContext(ctx, u.StatusID, u.Order, now, u.CardID); err != nil {
				return fmt.Errorf("updating order of card %s: %w", u.CardID, err)
			}
		}
		return nil
	})
}
