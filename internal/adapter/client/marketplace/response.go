package marketplace

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/govalues/decimal"
)

type createPortfolioRequest struct {
	AccountID   int64  `json:"aid"`
	Name        string `json:"portfolioName"`
	Description string `json:"portfolioDescription"`
}

type summaryResponse struct {
	InvestorID           int64       `json:"investorId"`
	AvailableCash        json.Number `json:"availableCash"`
	AccountTotal         json.Number `json:"accountTotal"`
	AccruedInterest      json.Number `json:"accruedInterest"`
	InfundingBalance     json.Number `json:"infundingBalance"`
	OutstandingPrincipal json.Number `json:"outstandingPrincipal"`
	ReceivedInterest     json.Number `json:"receivedInterest"`
	ReceivedPrincipal    json.Number `json:"receivedPrincipal"`
	ReceivedLateFees     json.Number `json:"receivedLateFees"`
	TotalNotes           int         `json:"totalNotes"`
	TotalPortfolios      int         `json:"totalPortfolios"`
}

func (r summaryResponse) toDomain() (*domain.Summary, error) {
	s := domain.Summary{
		InvestorID:      r.InvestorID,
		TotalNotes:      r.TotalNotes,
		TotalPortfolios: r.TotalPortfolios,
	}
	var errs decimalErrors
	s.AvailableCash = errs.parse("availableCash", r.AvailableCash)
	s.AccountTotal = errs.parse("accountTotal", r.AccountTotal)
	s.AccruedInterest = errs.parse("accruedInterest", r.AccruedInterest)
	s.InfundingBalance = errs.parse("infundingBalance", r.InfundingBalance)
	s.OutstandingPrincipal = errs.parse("outstandingPrincipal", r.OutstandingPrincipal)
	s.ReceivedInterest = errs.parse("receivedInterest", r.ReceivedInterest)
	s.ReceivedPrincipal = errs.parse("receivedPrincipal", r.ReceivedPrincipal)
	s.ReceivedLateFees = errs.parse("receivedLateFees", r.ReceivedLateFees)
	if errs.err != nil {
		return nil, errs.err
	}
	return &s, nil
}

type noteResponse struct {
	LoanID           int64       `json:"loanId"`
	NoteID           int64       `json:"noteId"`
	OrderID          int64       `json:"orderId"`
	InterestRate     json.Number `json:"interestRate"`
	LoanLength       int         `json:"loanLength"`
	LoanStatus       string      `json:"loanStatus"`
	Grade            string      `json:"grade"`
	LoanAmount       json.Number `json:"loanAmount"`
	NoteAmount       json.Number `json:"noteAmount"`
	PaymentsReceived json.Number `json:"paymentsReceived"`
	IssueDate        *time.Time  `json:"issueDate"`
	OrderDate        time.Time   `json:"orderDate"`
	LoanStatusDate   time.Time   `json:"loanStatusDate"`
}

func (r noteResponse) toDomain() (domain.Note, error) {
	n := domain.Note{
		LoanID:         r.LoanID,
		NoteID:         r.NoteID,
		OrderID:        r.OrderID,
		LoanLength:     r.LoanLength,
		LoanStatus:     r.LoanStatus,
		Grade:          r.Grade,
		IssueDate:      r.IssueDate,
		OrderDate:      r.OrderDate,
		LoanStatusDate: r.LoanStatusDate,
	}
	var errs decimalErrors
	n.InterestRate = errs.parse("interestRate", r.InterestRate)
	n.LoanAmount = errs.parse("loanAmount", r.LoanAmount)
	n.NoteAmount = errs.parse("noteAmount", r.NoteAmount)
	n.PaymentsReceived = errs.parse("paymentsReceived", r.PaymentsReceived)
	return n, errs.err
}

type portfolioResponse struct {
	ID          int64  `json:"portfolioId"`
	Name        string `json:"portfolioName"`
	Description string `json:"portfolioDescription"`
}

func (r portfolioResponse) toDomain() domain.Portfolio {
	return domain.Portfolio{ID: r.ID, Name: r.Name, Description: r.Description}
}

type confirmationResponse struct {
	LoanID          int64       `json:"loanId"`
	RequestedAmount json.Number `json:"requestedAmount"`
	InvestedAmount  json.Number `json:"investedAmount"`
	ExecutionStatus []string    `json:"executionStatus"`
}

type submissionResponse struct {
	OrderInstructID    int64                  `json:"orderInstructId"`
	OrderConfirmations []confirmationResponse `json:"orderConfirmations"`
}

func (r submissionResponse) toDomain() (*domain.SubmissionResult, error) {
	result := domain.SubmissionResult{
		OrderInstructID:    r.OrderInstructID,
		OrderConfirmations: make([]domain.OrderConfirmation, 0, len(r.OrderConfirmations)),
	}
	var errs decimalErrors
	for _, c := range r.OrderConfirmations {
		result.OrderConfirmations = append(result.OrderConfirmations, domain.OrderConfirmation{
			LoanID:          c.LoanID,
			RequestedAmount: errs.parse("requestedAmount", c.RequestedAmount),
			InvestedAmount:  errs.parse("investedAmount", c.InvestedAmount),
			ExecutionStatus: c.ExecutionStatus,
		})
	}
	if errs.err != nil {
		return nil, errs.err
	}
	return &result, nil
}

// decimalErrors keeps the first amount that failed to parse.
type decimalErrors struct {
	err error
}

func (e *decimalErrors) parse(field string, n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.Parse(n.String())
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("%w: %s: %w", domain.ErrUnexpectedResponseFormat, field, err)
	}
	return d
}
