package authz

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed access to permission overrides.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindBySubject returns the override authorities recorded for a subject.
func (r *Repository) FindBySubject(ctx context.Context, subjectID string) ([]Authority, error) {
	rows, err := r.pool.Query(ctx, `SELECT authority FROM permission_overrides WHERE subject_id = $1`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var authorities []Authority
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		authorities = append(authorities, Authority(a))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return authorities, nil
}
