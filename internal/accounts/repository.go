package accounts

import (
	"context"

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

// FindByUserID returns the accounts owned by a user.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT account_number, user_id, account_type, branch_address, created_at
		 FROM accounts WHERE user_id = $1 ORDER BY account_number`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.AccountNumber, &a.UserID, &a.AccountType, &a.BranchAddress, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}
