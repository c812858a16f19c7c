package service

import (
	"slices"
	"strings"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/pipeline"
)

// CriteriaPredicates turns declarative criteria into predicates. A loan
// missing an attribute a criterion looks at does not pass it.
func CriteriaPredicates(c domain.Criteria) []pipeline.Predicate {
	var preds []pipeline.Predicate

	if len(c.Terms) > 0 {
		preds = append(preds, pipeline.PredicateFunc(func(l domain.Loan) bool {
			term, ok := l.Int("term")
			return ok && slices.Contains(c.Terms, term)
		}))
	}
	if len(c.Grades) > 0 {
		preds = append(preds, pipeline.PredicateFunc(func(l domain.Loan) bool {
			grade, ok := l.String("grade")
			return ok && slices.ContainsFunc(c.Grades, func(g string) bool {
				return strings.EqualFold(g, grade)
			})
		}))
	}
	if c.MinAnnualInc > 0 || c.MaxAnnualInc > 0 {
		preds = append(preds, between("annualInc", c.MinAnnualInc, c.MaxAnnualInc))
	}
	if c.MinIntRate > 0 || c.MaxIntRate > 0 {
		preds = append(preds, between("intRate", c.MinIntRate, c.MaxIntRate))
	}

	return preds
}

// NotOwned rejects loans the investor already holds a note in.
func NotOwned(notes []domain.Note) pipeline.Predicate {
	owned := make(map[int64]struct{}, len(notes))
	for _, n := range notes {
		owned[n.LoanID] = struct{}{}
	}
	return pipeline.PredicateFunc(func(l domain.Loan) bool {
		id, ok := l.ID()
		if !ok {
			return false
		}
		_, held := owned[id]
		return !held
	})
}

// between checks lo <= v and, when hi is set, v < hi.
func between(key string, lo, hi float64) pipeline.Predicate {
	return pipeline.PredicateFunc(func(l domain.Loan) bool {
		v, ok := l.Float(key)
		if !ok {
			return false
		}
		if v < lo {
			return false
		}
		return hi <= 0 || v < hi
	})
}
