package pipeline

import (
	"context"
	"fmt"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
)

// Predicate decides whether a loan passes a filter.
type Predicate interface {
	Test(ctx context.Context, loan domain.Loan) (bool, error)
}

// PredicateFunc adapts a plain boolean function to Predicate.
type PredicateFunc func(domain.Loan) bool

func (f PredicateFunc) Test(_ context.Context, loan domain.Loan) (bool, error) {
	return f(loan), nil
}

// AsyncPredicateFunc adapts a function whose answer may need to be waited
// for, and which may fail.
type AsyncPredicateFunc func(context.Context, domain.Loan) (bool, error)

func (f AsyncPredicateFunc) Test(ctx context.Context, loan domain.Loan) (bool, error) {
	return f(ctx, loan)
}

// Evaluate ANDs the predicates in order. Once the verdict is false the
// remaining predicates are not called. No predicates means true.
func Evaluate(ctx context.Context, loan domain.Loan, preds ...Predicate) (bool, error) {
	verdict := true
	for i, p := range preds {
		if !verdict {
			break
		}
		var ok bool
		err := protect(func() error {
			var err error
			ok, err = p.Test(ctx, loan)
			return err
		})
		if err != nil {
			return false, fmt.Errorf("predicate %d: %w", i, err)
		}
		verdict = verdict && ok
	}
	return verdict, nil
}

// protect turns a panic in caller supplied code into an error.
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
