package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Loan is a listing record as returned by the marketplace. Only the id is
// required, every other attribute is read by caller predicates.
type Loan map[string]any

const loanIDKey = "id"

// ID returns the loan identifier if it is present and integral.
func (l Loan) ID() (int64, bool) {
	v, ok := l[loanIDKey]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func (l Loan) Int(key string) (int64, bool) {
	v, ok := l[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func (l Loan) Float(key string) (float64, bool) {
	v, ok := l[key]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

func (l Loan) String(key string) (string, bool) {
	v, ok := l[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ValidateLoan checks that candidate is a structured record carrying an id.
func ValidateLoan(candidate any) error {
	var rec map[string]any
	switch c := candidate.(type) {
	case Loan:
		rec = c
	case map[string]any:
		rec = c
	default:
		return fmt.Errorf("%w: %T is not a loan record", ErrInvalidLoan, candidate)
	}
	if rec == nil {
		return fmt.Errorf("%w: loan record is nil", ErrInvalidLoan)
	}
	if _, ok := rec[loanIDKey]; !ok {
		return fmt.Errorf("%w: loan id is missing", ErrInvalidLoan)
	}
	return nil
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
