package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Summary struct {
	InvestorID           int64
	AvailableCash        decimal.Decimal
	AccountTotal         decimal.Decimal
	AccruedInterest      decimal.Decimal
	InfundingBalance     decimal.Decimal
	OutstandingPrincipal decimal.Decimal
	ReceivedInterest     decimal.Decimal
	ReceivedPrincipal    decimal.Decimal
	ReceivedLateFees     decimal.Decimal
	TotalNotes           int
	TotalPortfolios      int
}

// Note is an already funded position owned by the investor.
type Note struct {
	LoanID           int64
	NoteID           int64
	OrderID          int64
	InterestRate     decimal.Decimal
	LoanLength       int
	LoanStatus       string
	Grade            string
	LoanAmount       decimal.Decimal
	NoteAmount       decimal.Decimal
	PaymentsReceived decimal.Decimal
	IssueDate        *time.Time
	OrderDate        time.Time
	LoanStatusDate   time.Time
}

type Portfolio struct {
	ID          int64
	Name        string
	Description string
}

type Credentials struct {
	Key        string
	InvestorID int64
}

// Validate reports the first missing credential, investor id before key.
func (c Credentials) Validate() error {
	if c.InvestorID == 0 {
		return ErrMissingInvestorID
	}
	if c.Key == "" {
		return ErrMissingKey
	}
	return nil
}

// ListOptions overrides listing defaults for a single call.
type ListOptions struct {
	InvestorID int64
	ShowAll    *bool
}
