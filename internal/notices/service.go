package notices

import "context"

// RepositoryPort defines data access methods for notices.
type RepositoryPort interface {
	FindActive(ctx context.Context) ([]Notice, error)
}

// Service handles notice business logic.
type Service struct {
	repo  RepositoryPort
	cache *Cache
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// ListActive returns the currently active notices, served from cache when
// possible.
func (s *Service) ListActive(ctx context.Context) ([]Notice, error) {
	return s.cache.FetchActive(ctx, s.repo.FindActive)
}
