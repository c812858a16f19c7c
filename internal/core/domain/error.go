package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")
	ErrPresetsDisabled = errors.New("preset storage is not configured")

	// * Communication errors.
	ErrBadRequest               = errors.New("error parsing request")
	ErrTransport                = errors.New("marketplace transport error")
	ErrUnexpectedResponseFormat = errors.New("unexpected marketplace response format")

	// * Credential errors.
	ErrMissingCredential = errors.New("missing credential")
	ErrMissingInvestorID = fmt.Errorf("%w: investorId is not set", ErrMissingCredential)
	ErrMissingKey        = fmt.Errorf("%w: api key is not set", ErrMissingCredential)

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid api key")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Pipeline errors.
	ErrInvalidLoan   = errors.New("invalid loan")
	ErrEmptyLoanList = errors.New("loan list is empty")
	ErrTypeMismatch  = errors.New("type mismatch")
)

// RateLimitedError is a transport failure caused by the marketplace refusing
// the request until RetryAfter has passed.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: rate limited, retry after %s", ErrTransport, e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error {
	return ErrTransport
}
