package pipeline

import (
	"context"
	"fmt"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/govalues/decimal"
	"golang.org/x/sync/errgroup"
)

type (
	AmountSource    = Source[decimal.Decimal]
	PortfolioSource = Source[*int64]
)

// Amount returns a literal requested amount source in whole dollars.
func Amount(dollars int64) AmountSource {
	return Literal(decimal.MustNew(dollars, 0))
}

// PortfolioID returns a literal portfolio source.
func PortfolioID(id int64) PortfolioSource {
	return Literal(&id)
}

type Builder struct {
	Workers int
}

func NewBuilder(workers int) *Builder {
	return &Builder{Workers: workers}
}

// Build turns loans into an order batch for accountID. Every loan is validated
// and its amount and portfolio are resolved independently; the first failure
// fails the whole build.
func (b *Builder) Build(ctx context.Context, loans []domain.Loan,
	amount AmountSource, portfolio PortfolioSource, accountID int64) (*domain.OrderBatch, error) {
	if len(loans) == 0 {
		return nil, domain.ErrEmptyLoanList
	}
	if accountID == 0 {
		return nil, domain.ErrMissingInvestorID
	}

	orders := make([]domain.Order, len(loans))

	g, gctx := errgroup.WithContext(ctx)
	if b.Workers > 0 {
		g.SetLimit(b.Workers)
	}

	for i, loan := range loans {
		g.Go(func() error {
			order, err := buildOrder(gctx, loan, amount, portfolio)
			if err != nil {
				return fmt.Errorf("loan #%d: %w", i, err)
			}
			orders[i] = order
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.OrderBatch{AccountID: accountID, Orders: orders}, nil
}

func buildOrder(ctx context.Context, loan domain.Loan,
	amount AmountSource, portfolio PortfolioSource) (domain.Order, error) {
	if err := domain.ValidateLoan(loan); err != nil {
		return domain.Order{}, err
	}
	loanID, ok := loan.ID()
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: loan id %v is not an integer", domain.ErrInvalidLoan, loan["id"])
	}

	var (
		requested   decimal.Decimal
		portfolioID *int64
	)
	err := protect(func() error {
		var err error
		requested, err = Resolve(ctx, amount, loan, domain.DefaultRequestedAmount)
		if err != nil {
			return fmt.Errorf("requested amount: %w", err)
		}
		portfolioID, err = Resolve(ctx, portfolio, loan, nil)
		if err != nil {
			return fmt.Errorf("portfolio id: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{LoanID: loanID, RequestedAmount: requested}
	if portfolioID != nil {
		id := *portfolioID
		order.PortfolioID = &id
	}
	return order, nil
}
