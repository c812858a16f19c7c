package pipeline

import (
	"context"
	"fmt"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrorPolicy selects what Filter does when a loan's predicate chain fails.
type ErrorPolicy string

const (
	// ExcludeOnError drops the failing loan and keeps going.
	ExcludeOnError ErrorPolicy = "exclude"
	// PropagateError fails the whole filter call with the first error.
	PropagateError ErrorPolicy = "propagate"
)

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(s) {
	case "", ExcludeOnError:
		return ExcludeOnError, nil
	case PropagateError:
		return PropagateError, nil
	}
	return "", fmt.Errorf("unknown filter error policy %q", s)
}

type Filter struct {
	Policy ErrorPolicy
	// Workers caps the number of loans evaluated at once, 0 means no cap.
	Workers int
	Logger  *zap.Logger
}

func NewFilter(policy ErrorPolicy, workers int, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filter{Policy: policy, Workers: workers, Logger: logger}
}

// Apply evaluates the predicate chain for every loan concurrently and returns
// the loans that passed, in input order.
func (f *Filter) Apply(ctx context.Context, loans []domain.Loan, preds ...Predicate) ([]domain.Loan, error) {
	if len(loans) == 0 {
		return []domain.Loan{}, nil
	}

	passed := make([]bool, len(loans))

	g, gctx := errgroup.WithContext(ctx)
	if f.Workers > 0 {
		g.SetLimit(f.Workers)
	}

	for i, loan := range loans {
		g.Go(func() error {
			ok, err := Evaluate(gctx, loan, preds...)
			if err != nil {
				if f.Policy == PropagateError {
					return fmt.Errorf("loan #%d: %w", i, err)
				}
				f.logger().Warn("loan excluded after predicate failure",
					zap.Int("index", i), zap.Error(err))
				return nil
			}
			passed[i] = ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]domain.Loan, 0, len(loans))
	for i, loan := range loans {
		if passed[i] {
			result = append(result, loan)
		}
	}
	return result, nil
}

func (f *Filter) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}
