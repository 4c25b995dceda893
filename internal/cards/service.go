package cards

import "context"

// RepositoryPort defines data access methods for cards.
type RepositoryPort interface {
	FindByUserID(ctx context.Context, userID int64) ([]Card, error)
	UpdateStatus(ctx context.Context, cardID int64, status CardStatus) error
}

// Service handles card business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListForUser returns the cards issued to the given user.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]Card, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Activate marks a card as active.
func (s *Service) Activate(ctx context.Context, cardID int64) error {
	return s.repo.UpdateStatus(ctx, cardID, StatusActive)
}

// Block marks a card as blocked.
func (s *Service) Block(ctx context.Context, cardID int64) error {
	return s.repo.UpdateStatus(ctx, cardID, StatusBlocked)
}
