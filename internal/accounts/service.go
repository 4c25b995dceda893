package accounts

import "context"

// RepositoryPort defines data access methods for accounts.
type RepositoryPort interface {
	FindByUserID(ctx context.Context, userID int64) ([]Account, error)
}

// Service handles account business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListForUser returns the accounts owned by the given user.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]Account, error) {
	return s.repo.FindByUserID(ctx, userID)
}
