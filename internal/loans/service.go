package loans

import "context"

// RepositoryPort defines data access methods for loans.
type RepositoryPort interface {
	FindByUserID(ctx context.Context, userID int64) ([]Loan, error)
	Approve(ctx context.Context, loanNumber int64) error
}

// Service handles loan business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListForUser returns the loans issued to the given user.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]Loan, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Approve transitions a pending loan to approved.
func (s *Service) Approve(ctx context.Context, loanNumber int64) error {
	return s.repo.Approve(ctx, loanNumber)
}
