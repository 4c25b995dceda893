package transactions

import (
	"context"

	"github.com/easybank/easybank-backend/internal/shared"
)

// RepositoryPort defines data access methods for transactions.
type RepositoryPort interface {
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]Transaction, int, error)
	LatestClosingBalance(ctx context.Context, userID int64) (float64, error)
	SumByType(ctx context.Context, userID int64, txType TransactionType) (float64, error)
}

// Service handles transaction and balance business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Page bundles one page of transactions with pagination metadata.
type Page struct {
	Items      []Transaction     `json:"items"`
	Pagination shared.Pagination `json:"pagination"`
	Summary    BalanceSummary    `json:"summary"`
}

// ListForUser returns one page of the user's transactions plus the balance
// summary over all of them.
func (s *Service) ListForUser(ctx context.Context, userID int64, page, perPage int) (Page, error) {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	items, total, err := s.repo.ListByUserID(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return Page{}, err
	}
	summary, err := s.SummaryForUser(ctx, userID)
	if err != nil {
		return Page{}, err
	}
	summary.TransactionCount = int64(total)
	if items == nil {
		items = []Transaction{}
	}
	return Page{
		Items:      items,
		Pagination: shared.NewPagination(page, perPage, total),
		Summary:    summary,
	}, nil
}

// SummaryForUser aggregates the balance summary for a user.
func (s *Service) SummaryForUser(ctx context.Context, userID int64) (BalanceSummary, error) {
	current, err := s.repo.LatestClosingBalance(ctx, userID)
	if err != nil {
		return BalanceSummary{}, err
	}
	credits, err := s.repo.SumByType(ctx, userID, TypeDeposit)
	if err != nil {
		return BalanceSummary{}, err
	}
	debits, err := s.repo.SumByType(ctx, userID, TypeWithdrawal)
	if err != nil {
		return BalanceSummary{}, err
	}
	return BalanceSummary{
		CurrentBalance: current,
		TotalCredits:   credits,
		TotalDebits:    debits,
	}, nil
}
