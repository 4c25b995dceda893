package loans

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

// FindByUserID returns the loans issued to a user, newest start date first.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]Loan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT loan_number, user_id, start_dt, loan_type, status, total_loan,
		        amount_paid, outstanding_amount, created_at
		 FROM loans WHERE user_id = $1 ORDER BY start_dt DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var loans []Loan
	for rows.Next() {
		var l Loan
		if err := rows.Scan(&l.LoanNumber, &l.UserID, &l.StartDate, &l.LoanType, &l.Status,
			&l.TotalLoan, &l.AmountPaid, &l.OutstandingAmount, &l.CreatedAt); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loans, nil
}

// Approve transitions a pending loan to approved. Returns shared.ErrNotFound
// when no pending loan with the number exists.
func (r *Repository) Approve(ctx context.Context, loanNumber int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE loans SET status = $1 WHERE loan_number = $2 AND status = $3`,
		string(StatusApproved), loanNumber, string(StatusPending),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
