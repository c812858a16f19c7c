package port

import (
	"context"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/pipeline"
)

type Service interface {
	Credentials() domain.Credentials

	ListLoans(ctx context.Context, opts *domain.ListOptions) ([]domain.Loan, error)
	FilterListedLoans(ctx context.Context, preds ...pipeline.Predicate) ([]domain.Loan, error)
	FilterByCriteria(ctx context.Context, criteria domain.Criteria) ([]domain.Loan, error)

	CreateOrder(ctx context.Context, loans []domain.Loan,
		amount pipeline.AmountSource, portfolio pipeline.PortfolioSource) (*domain.OrderBatch, error)
	CreateOrders(ctx context.Context, loans []domain.Loan,
		amount pipeline.AmountSource, portfolio pipeline.PortfolioSource) ([]domain.Order, error)
	SubmitOrders(ctx context.Context, orders []domain.Order) (*domain.SubmissionResult, error)

	Summary(ctx context.Context) (*domain.Summary, error)
	NotesOwned(ctx context.Context) ([]domain.Note, error)
	Portfolios(ctx context.Context) ([]domain.Portfolio, error)
	CreatePortfolio(ctx context.Context, name, description string) (*domain.Portfolio, error)

	SavePreset(ctx context.Context, preset *domain.Preset) (*domain.Preset, error)
	GetPreset(ctx context.Context, name string) (*domain.Preset, error)
	ListPresets(ctx context.Context) ([]*domain.Preset, error)
	DeletePreset(ctx context.Context, name string) error
	Invest(ctx context.Context, presetName string) (*domain.SubmissionResult, error)
}
