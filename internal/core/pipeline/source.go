package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/govalues/decimal"
)

type sourceKind int

const (
	sourceAbsent sourceKind = iota
	sourceLiteral
	sourceSync
	sourceAsync
)

// Source is a per-loan value that is either absent, a literal, or computed
// from the loan synchronously or asynchronously. The zero value is absent.
type Source[T any] struct {
	kind  sourceKind
	value T
	sync  func(domain.Loan) T
	async func(context.Context, domain.Loan) (T, error)
}

func Absent[T any]() Source[T] {
	return Source[T]{}
}

func Literal[T any](v T) Source[T] {
	return Source[T]{kind: sourceLiteral, value: v}
}

func Sync[T any](fn func(domain.Loan) T) Source[T] {
	if fn == nil {
		return Source[T]{}
	}
	return Source[T]{kind: sourceSync, sync: fn}
}

// Async wraps a computation that may block or fail. It runs on the caller's
// goroutine for the loan and receives the caller's context.
func Async[T any](fn func(context.Context, domain.Loan) (T, error)) Source[T] {
	if fn == nil {
		return Source[T]{}
	}
	return Source[T]{kind: sourceAsync, async: fn}
}

// SourceOf converts an untyped value into a Source. Accepted inputs are nil,
// a T, a Source[T], func(Loan) T and func(context.Context, Loan) (T, error).
// For decimal.Decimal and *int64 sources plain numbers (int, int64, float64,
// json.Number) are taken as literals too.
func SourceOf[T any](v any) (Source[T], error) {
	switch s := v.(type) {
	case nil:
		return Absent[T](), nil
	case Source[T]:
		return s, nil
	case T:
		return Literal(s), nil
	case func(domain.Loan) T:
		return Sync(s), nil
	case func(context.Context, domain.Loan) (T, error):
		return Async(s), nil
	}
	if lit, ok, err := numericLiteral[T](v); ok {
		if err != nil {
			return Source[T]{}, err
		}
		return Literal(lit), nil
	}
	var zero T
	return Source[T]{}, fmt.Errorf("%w: expected nothing, %T or a function of a loan, got %T",
		domain.ErrTypeMismatch, zero, v)
}

// numericLiteral reports whether v is a number that T can hold and converts
// it. ok is false when either T or v is not numeric.
func numericLiteral[T any](v any) (lit T, ok bool, err error) {
	var out any
	switch any(lit).(type) {
	case decimal.Decimal:
		var d decimal.Decimal
		d, ok, err = toDecimal(v)
		out = d
	case *int64:
		var n int64
		n, ok, err = toInt64(v)
		out = &n
	}
	if !ok || err != nil {
		return lit, ok, err
	}
	return out.(T), true, nil
}

func toDecimal(v any) (decimal.Decimal, bool, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch n := v.(type) {
	case int:
		d, err = decimal.New(int64(n), 0)
	case int32:
		d, err = decimal.New(int64(n), 0)
	case int64:
		d, err = decimal.New(n, 0)
	case float64:
		d, err = decimal.NewFromFloat64(n)
	case json.Number:
		d, err = decimal.Parse(n.String())
	default:
		return d, false, nil
	}
	if err != nil {
		return d, true, fmt.Errorf("%w: %v is not a decimal: %v", domain.ErrTypeMismatch, v, err)
	}
	return d, true, nil
}

func toInt64(v any) (int64, bool, error) {
	switch n := v.(type) {
	case int:
		return int64(n), true, nil
	case int32:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, true, fmt.Errorf("%w: %v is not an integer", domain.ErrTypeMismatch, v)
		}
		return i, true, nil
	}
	return 0, false, nil
}

// Resolve produces the value of src for loan, falling back to def when src is
// absent. Literals are returned as is. Nothing is cached between loans.
func Resolve[T any](ctx context.Context, src Source[T], loan domain.Loan, def T) (T, error) {
	switch src.kind {
	case sourceAbsent:
		return def, nil
	case sourceLiteral:
		return src.value, nil
	case sourceSync:
		return src.sync(loan), nil
	case sourceAsync:
		return src.async(ctx, loan)
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown source kind %d", domain.ErrTypeMismatch, src.kind)
}
