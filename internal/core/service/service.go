package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/pipeline"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	creds   domain.Credentials
	client  port.MarketplaceClient
	presets port.PresetRepository
	filter  *pipeline.Filter
	builder *pipeline.Builder
	logger  *zap.Logger
}

// NewService builds the manager. presets may be nil, in which case preset
// operations report domain.ErrPresetsDisabled.
func NewService(creds domain.Credentials, client port.MarketplaceClient, presets port.PresetRepository,
	filter *pipeline.Filter, builder *pipeline.Builder, logger *zap.Logger) (*Service, error) {
	if filter == nil {
		filter = pipeline.NewFilter(pipeline.ExcludeOnError, 0, logger)
	}
	if builder == nil {
		builder = pipeline.NewBuilder(0)
	}
	return &Service{
		creds:   creds,
		client:  client,
		presets: presets,
		filter:  filter,
		builder: builder,
		logger:  logger,
	}, nil
}

func (s *Service) Credentials() domain.Credentials {
	return s.creds
}

func (s *Service) ListLoans(ctx context.Context, opts *domain.ListOptions) ([]domain.Loan, error) {
	creds := s.creds
	showAll := true
	if opts != nil {
		if opts.InvestorID != 0 {
			creds.InvestorID = opts.InvestorID
		}
		if opts.ShowAll != nil {
			showAll = *opts.ShowAll
		}
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	loans, err := s.client.ListLoans(ctx, creds.InvestorID, showAll)
	if err != nil {
		s.logger.Error("List loans", zap.Error(err))
		return nil, err
	}
	return loans, nil
}

// FilterListedLoans lists the current loans and keeps those passing every
// predicate.
func (s *Service) FilterListedLoans(ctx context.Context, preds ...pipeline.Predicate) ([]domain.Loan, error) {
	loans, err := s.ListLoans(ctx, nil)
	if err != nil {
		return nil, err
	}

	filtered, err := s.filter.Apply(ctx, loans, preds...)
	if err != nil {
		s.logger.Error("Filter loans", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Filtered loans",
		zap.Int("listed", len(loans)), zap.Int("passed", len(filtered)))
	return filtered, nil
}

func (s *Service) FilterByCriteria(ctx context.Context, criteria domain.Criteria) ([]domain.Loan, error) {
	if err := s.creds.Validate(); err != nil {
		return nil, err
	}

	preds := CriteriaPredicates(criteria)
	if criteria.ExcludeOwned {
		notes, err := s.NotesOwned(ctx)
		if err != nil {
			return nil, err
		}
		preds = append(preds, NotOwned(notes))
	}

	return s.FilterListedLoans(ctx, preds...)
}

// CreateOrder builds a single order batch addressed to the configured account.
func (s *Service) CreateOrder(ctx context.Context, loans []domain.Loan,
	amount pipeline.AmountSource, portfolio pipeline.PortfolioSource) (*domain.OrderBatch, error) {
	return s.builder.Build(ctx, loans, amount, portfolio, s.creds.InvestorID)
}

// CreateOrders is CreateOrder returning only the orders, ready for
// SubmitOrders.
func (s *Service) CreateOrders(ctx context.Context, loans []domain.Loan,
	amount pipeline.AmountSource, portfolio pipeline.PortfolioSource) ([]domain.Order, error) {
	batch, err := s.CreateOrder(ctx, loans, amount, portfolio)
	if err != nil {
		return nil, err
	}
	return batch.Orders, nil
}

func (s *Service) SubmitOrders(ctx context.Context, orders []domain.Order) (*domain.SubmissionResult, error) {
	if err := s.creds.Validate(); err != nil {
		return nil, err
	}

	result, err := s.client.SubmitOrders(ctx, &domain.OrderBatch{
		AccountID: s.creds.InvestorID,
		Orders:    orders,
	})
	if err != nil {
		s.logger.Error("Submit orders", zap.Error(err), zap.Int("orders", len(orders)))
		return nil, err
	}

	s.logger.Info("Orders submitted",
		zap.Int64("orderInstructId", result.OrderInstructID), zap.Int("orders", len(orders)))
	return result, nil
}

func (s *Service) Summary(ctx context.Context) (*domain.Summary, error) {
	if err := s.creds.Validate(); err != nil {
		return nil, err
	}
	return s.client.Summary(ctx, s.creds.InvestorID)
}

func (s *Service) NotesOwned(ctx context.Context) ([]domain.Note, error) {
	if err := s.creds.Validate(); err != nil {
		return nil, err
	}
	return s.client.NotesOwned(ctx, s.creds.InvestorID)
}

func (s *Service) Portfolios(ctx context.Context) ([]domain.Portfolio, error) {
	if err := s.creds.Validate(); err != nil {
		return nil, err
	}
	return s.client.Portfolios(ctx, s.creds.InvestorID)
}

func (s *Service) CreatePortfolio(ctx context.Context, name, description string) (*domain.Portfolio, error) {
	if err := s.creds.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreatePortfolio(ctx, s.creds.InvestorID, name, description)
}

func (s *Service) SavePreset(ctx context.Context, preset *domain.Preset) (*domain.Preset, error) {
	if s.presets == nil {
		return nil, domain.ErrPresetsDisabled
	}
	if preset.Name == "" {
		return nil, domain.ErrBadRequest
	}

	record := *preset
	if record.RequestedAmount.IsZero() {
		record.RequestedAmount = domain.DefaultRequestedAmount
	}
	record.CreatedAt = time.Now()

	saved, err := s.presets.CreatePreset(ctx, &record)
	if err != nil {
		if !errors.Is(err, domain.ErrConflictingData) {
			s.logger.Error("Create preset", zap.Error(err))
		}
		return nil, err
	}
	return saved, nil
}

func (s *Service) GetPreset(ctx context.Context, name string) (*domain.Preset, error) {
	if s.presets == nil {
		return nil, domain.ErrPresetsDisabled
	}
	return s.presets.ReadPreset(ctx, name)
}

func (s *Service) ListPresets(ctx context.Context) ([]*domain.Preset, error) {
	if s.presets == nil {
		return nil, domain.ErrPresetsDisabled
	}
	return s.presets.ListPresets(ctx)
}

func (s *Service) DeletePreset(ctx context.Context, name string) error {
	if s.presets == nil {
		return domain.ErrPresetsDisabled
	}
	return s.presets.DeletePreset(ctx, name)
}

// Invest runs a saved preset end to end: filter the listing, build one order
// per matching loan and submit them.
func (s *Service) Invest(ctx context.Context, presetName string) (*domain.SubmissionResult, error) {
	preset, err := s.GetPreset(ctx, presetName)
	if err != nil {
		return nil, err
	}

	loans, err := s.FilterByCriteria(ctx, preset.Criteria)
	if err != nil {
		return nil, err
	}

	var portfolio pipeline.PortfolioSource
	if preset.PortfolioID != nil {
		portfolio = pipeline.PortfolioID(*preset.PortfolioID)
	}

	orders, err := s.CreateOrders(ctx, loans, pipeline.Literal(preset.RequestedAmount), portfolio)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Investing by preset",
		zap.String("preset", preset.Name), zap.Int("orders", len(orders)))
	return s.SubmitOrders(ctx, orders)
}
