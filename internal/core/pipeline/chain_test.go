package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/pipeline"
	"github.com/stretchr/testify/assert"
)

func is60months(l domain.Loan) bool {
	term, _ := l.Int("term")
	return term == 60
}

func makesLt90k(l domain.Loan) bool {
	inc, _ := l.Float("annualInc")
	return inc < 90000
}

func TestEvaluate(t *testing.T) {
	loan := domain.Loan{"id": 1, "term": 60, "annualInc": 85000.0}
	errBroken := errors.New("broken")

	asyncTrue := pipeline.AsyncPredicateFunc(func(context.Context, domain.Loan) (bool, error) {
		return true, nil
	})

	type evaluateTest struct {
		name     string
		preds    []pipeline.Predicate
		expOK    bool
		expError error
		anyError bool
	}

	tests := []evaluateTest{
		{name: "no predicates pass", preds: nil, expOK: true},
		{name: "sync true", preds: []pipeline.Predicate{pipeline.PredicateFunc(is60months)}, expOK: true},
		{
			name:  "sync and async",
			preds: []pipeline.Predicate{asyncTrue, pipeline.PredicateFunc(makesLt90k)},
			expOK: true,
		},
		{
			name: "false wins",
			preds: []pipeline.Predicate{
				pipeline.PredicateFunc(is60months),
				pipeline.PredicateFunc(func(domain.Loan) bool { return false }),
			},
			expOK: false,
		},
		{
			name: "failure propagates",
			preds: []pipeline.Predicate{
				pipeline.AsyncPredicateFunc(func(context.Context, domain.Loan) (bool, error) {
					return false, errBroken
				}),
			},
			expError: errBroken,
		},
		{
			name: "panic becomes an error",
			preds: []pipeline.Predicate{
				pipeline.PredicateFunc(func(domain.Loan) bool { panic("boom") }),
			},
			anyError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := pipeline.Evaluate(context.Background(), loan, test.preds...)
			switch {
			case test.anyError:
				assert.Error(t, err)
			case test.expError != nil:
				assert.ErrorIs(t, err, test.expError)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expOK, ok)
		})
	}
}

func TestEvaluate_ShortCircuit(t *testing.T) {
	second := 0
	preds := []pipeline.Predicate{
		pipeline.PredicateFunc(func(domain.Loan) bool { return false }),
		pipeline.AsyncPredicateFunc(func(context.Context, domain.Loan) (bool, error) {
			second++
			return true, nil
		}),
	}

	ok, err := pipeline.Evaluate(context.Background(), domain.Loan{"id": 1}, preds...)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, second)
}
