package domain

import (
	"encoding/json"

	"github.com/govalues/decimal"
)

// DefaultRequestedAmount is the per-note order amount in dollars used when no
// amount source is supplied.
var DefaultRequestedAmount = decimal.MustNew(25, 0)

type Order struct {
	LoanID          int64
	RequestedAmount decimal.Decimal
	PortfolioID     *int64
}

type orderJSON struct {
	LoanID          int64       `json:"loanId"`
	RequestedAmount json.Number `json:"requestedAmount"`
	PortfolioID     *int64      `json:"portfolioId,omitempty"`
}

// MarshalJSON writes requestedAmount as a JSON number and leaves portfolioId
// out entirely when it is unset.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		LoanID:          o.LoanID,
		RequestedAmount: json.Number(o.RequestedAmount.String()),
		PortfolioID:     o.PortfolioID,
	})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var raw orderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.Parse(raw.RequestedAmount.String())
	if err != nil {
		return err
	}
	o.LoanID = raw.LoanID
	o.RequestedAmount = amount
	o.PortfolioID = raw.PortfolioID
	return nil
}

type OrderBatch struct {
	AccountID int64   `json:"aid"`
	Orders    []Order `json:"orders"`
}

type OrderConfirmation struct {
	LoanID          int64
	RequestedAmount decimal.Decimal
	InvestedAmount  decimal.Decimal
	ExecutionStatus []string
}

type SubmissionResult struct {
	OrderInstructID    int64
	OrderConfirmations []OrderConfirmation
}
