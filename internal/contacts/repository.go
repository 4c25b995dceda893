package contacts

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

// Create inserts a contact message.
func (r *Repository) Create(ctx context.Context, msg Message) (Message, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (contact_id, contact_name, contact_email, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING created_at`,
		msg.Reference, msg.Name, msg.Email, msg.Subject, msg.Body,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

// List returns recent contact messages, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT contact_id, contact_name, contact_email, subject, message, created_at
		 FROM contact_messages ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Reference, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
