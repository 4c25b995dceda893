package cards

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easybank/easybank-backend/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindByUserID returns the cards issued to a user.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]Card, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT card_id, user_id, card_number, card_type, status, total_limit,
		        amount_used, available_amount, created_at
		 FROM cards WHERE user_id = $1 ORDER BY card_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cards []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.CardID, &c.UserID, &c.CardNumber, &c.CardType, &c.Status,
			&c.TotalLimit, &c.AmountUsed, &c.AvailableAmount, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateStatus sets the status of a card. Returns shared.ErrNotFound when
// the card does not exist.
func (r *Repository) UpdateStatus(ctx context.Context, cardID int64, status CardStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cards SET status = $1 WHERE card_id = $2`,
		string(status), cardID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
