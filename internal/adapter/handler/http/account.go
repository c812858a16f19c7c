package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AccountHandler struct {
	Handler
	service port.Service
}

func NewAccountHandler(service port.Service, logger *zap.Logger) (*AccountHandler, error) {
	return &AccountHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type summaryResponse struct {
	InvestorID           int64       `json:"investorId"`
	AvailableCash        jsonDecimal `json:"availableCash"`
	AccountTotal         jsonDecimal `json:"accountTotal"`
	AccruedInterest      jsonDecimal `json:"accruedInterest"`
	InfundingBalance     jsonDecimal `json:"infundingBalance"`
	OutstandingPrincipal jsonDecimal `json:"outstandingPrincipal"`
	ReceivedInterest     jsonDecimal `json:"receivedInterest"`
	ReceivedPrincipal    jsonDecimal `json:"receivedPrincipal"`
	ReceivedLateFees     jsonDecimal `json:"receivedLateFees"`
	TotalNotes           int         `json:"totalNotes"`
	TotalPortfolios      int         `json:"totalPortfolios"`
}

func (ah *AccountHandler) Summary(ctx *gin.Context) {
	s, err := ah.service.Summary(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, summaryResponse{
		InvestorID:           s.InvestorID,
		AvailableCash:        jsonDecimal(s.AvailableCash),
		AccountTotal:         jsonDecimal(s.AccountTotal),
		AccruedInterest:      jsonDecimal(s.AccruedInterest),
		InfundingBalance:     jsonDecimal(s.InfundingBalance),
		OutstandingPrincipal: jsonDecimal(s.OutstandingPrincipal),
		ReceivedInterest:     jsonDecimal(s.ReceivedInterest),
		ReceivedPrincipal:    jsonDecimal(s.ReceivedPrincipal),
		ReceivedLateFees:     jsonDecimal(s.ReceivedLateFees),
		TotalNotes:           s.TotalNotes,
		TotalPortfolios:      s.TotalPortfolios,
	})
}

type noteResponse struct {
	LoanID           int64       `json:"loanId"`
	NoteID           int64       `json:"noteId"`
	OrderID          int64       `json:"orderId"`
	InterestRate     jsonDecimal `json:"interestRate"`
	LoanLength       int         `json:"loanLength"`
	LoanStatus       string      `json:"loanStatus"`
	Grade            string      `json:"grade"`
	LoanAmount       jsonDecimal `json:"loanAmount"`
	NoteAmount       jsonDecimal `json:"noteAmount"`
	PaymentsReceived jsonDecimal `json:"paymentsReceived"`
	IssueDate        *time.Time  `json:"issueDate"`
	OrderDate        time.Time   `json:"orderDate"`
	LoanStatusDate   time.Time   `json:"loanStatusDate"`
}

func (ah *AccountHandler) NotesOwned(ctx *gin.Context) {
	notes, err := ah.service.NotesOwned(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, noteResponse{
			LoanID:           n.LoanID,
			NoteID:           n.NoteID,
			OrderID:          n.OrderID,
			InterestRate:     jsonDecimal(n.InterestRate),
			LoanLength:       n.LoanLength,
			LoanStatus:       n.LoanStatus,
			Grade:            n.Grade,
			LoanAmount:       jsonDecimal(n.LoanAmount),
			NoteAmount:       jsonDecimal(n.NoteAmount),
			PaymentsReceived: jsonDecimal(n.PaymentsReceived),
			IssueDate:        n.IssueDate,
			OrderDate:        n.OrderDate,
			LoanStatusDate:   n.LoanStatusDate,
		})
	}

	ah.handleSuccess(ctx, struct {
		MyNotes []noteResponse `json:"myNotes"`
	}{MyNotes: result})
}

type portfolioDTO struct {
	ID          int64  `json:"portfolioId,omitempty"`
	Name        string `json:"portfolioName" binding:"required"`
	Description string `json:"portfolioDescription"`
}

func newPortfolioDTO(p domain.Portfolio) portfolioDTO {
	return portfolioDTO{ID: p.ID, Name: p.Name, Description: p.Description}
}

func (ah *AccountHandler) Portfolios(ctx *gin.Context) {
	list, err := ah.service.Portfolios(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]portfolioDTO, 0, len(list))
	for _, p := range list {
		result = append(result, newPortfolioDTO(p))
	}

	ah.handleSuccess(ctx, struct {
		MyPortfolios []portfolioDTO `json:"myPortfolios"`
	}{MyPortfolios: result})
}

func (ah *AccountHandler) CreatePortfolio(ctx *gin.Context) {
	req := portfolioDTO{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	p, err := ah.service.CreatePortfolio(ctx, req.Name, req.Description)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccessWithStatus(ctx, newPortfolioDTO(*p), http.StatusCreated)
}
