package port

import (
	"context"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
)

//go:generate mockgen -source=marketplace.go -destination=mock/marketplace.go -package=mock
type MarketplaceClient interface {
	ListLoans(ctx context.Context, investorID int64, showAll bool) ([]domain.Loan, error)
	Summary(ctx context.Context, investorID int64) (*domain.Summary, error)
	NotesOwned(ctx context.Context, investorID int64) ([]domain.Note, error)
	Portfolios(ctx context.Context, investorID int64) ([]domain.Portfolio, error)
	CreatePortfolio(ctx context.Context, investorID int64, name, description string) (*domain.Portfolio, error)
	SubmitOrders(ctx context.Context, batch *domain.OrderBatch) (*domain.SubmissionResult, error)
}
