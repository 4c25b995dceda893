package transactions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListByUserID returns one page of a user's transactions, newest first,
// along with the total row count.
func (r *Repository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]Transaction, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM account_transactions WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT transaction_id, account_number, user_id, transaction_dt, transaction_summary,
		        transaction_type, transaction_amt, closing_balance, created_at
		 FROM account_transactions
		 WHERE user_id = $1
		 ORDER BY transaction_dt DESC, transaction_id DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var txns []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.AccountNumber, &t.UserID, &t.Date, &t.Summary,
			&t.Type, &t.Amount, &t.ClosingBalance, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// LatestClosingBalance returns the closing balance of the most recent
// transaction, or 0 when the user has none.
func (r *Repository) LatestClosingBalance(ctx context.Context, userID int64) (float64, error) {
	var balance float64
	err := r.pool.QueryRow(ctx,
		`SELECT closing_balance FROM account_transactions
		 WHERE user_id = $1 ORDER BY transaction_dt DESC, transaction_id DESC LIMIT 1`,
		userID,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// SumByType totals transaction amounts of one direction for a user.
func (r *Repository) SumByType(ctx context.Context, userID int64, txType TransactionType) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(sum(transaction_amt), 0) FROM account_transactions
		 WHERE user_id = $1 AND transaction_type = $2`,
		userID, string(txType),
	).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}
