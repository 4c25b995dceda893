package notices

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

// FindActive returns notices whose validity window covers now.
func (r *Repository) FindActive(ctx context.Context) ([]Notice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT notice_id, notice_summary, notice_details, start_dt, end_dt, created_at
		 FROM notices
		 WHERE start_dt <= now() AND end_dt >= now()
		 ORDER BY start_dt DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var notices []Notice
	for rows.Next() {
		var n Notice
		if err := rows.Scan(&n.ID, &n.Summary, &n.Details, &n.StartDate, &n.EndDate, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notices, nil
}
