package http

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/pipeline"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderRequest struct {
	Loans           []domain.Loan `json:"loans"`
	RequestedAmount json.Number   `json:"requestedAmount"`
	// AmountByGrade overrides RequestedAmount for loans of the listed grades.
	AmountByGrade map[string]json.Number `json:"amountByGrade"`
	PortfolioID   json.Number            `json:"portfolioId"`
}

func (r createOrderRequest) amountSource() (pipeline.AmountSource, error) {
	var requested any
	if r.RequestedAmount != "" {
		requested = r.RequestedAmount
	}
	src, err := pipeline.SourceOf[decimal.Decimal](requested)
	if err != nil {
		return pipeline.AmountSource{}, fmt.Errorf("requestedAmount: %w", err)
	}
	if len(r.AmountByGrade) == 0 {
		return src, nil
	}

	byGrade := make(map[string]decimal.Decimal, len(r.AmountByGrade))
	for grade, raw := range r.AmountByGrade {
		d, err := decimal.Parse(raw.String())
		if err != nil {
			return pipeline.AmountSource{}, fmt.Errorf("amountByGrade %s: %w", grade, err)
		}
		byGrade[strings.ToUpper(grade)] = d
	}
	def, err := pipeline.Resolve(context.Background(), src, nil, domain.DefaultRequestedAmount)
	if err != nil {
		return pipeline.AmountSource{}, err
	}

	return pipeline.SourceOf[decimal.Decimal](func(loan domain.Loan) decimal.Decimal {
		grade, _ := loan.String("grade")
		if d, ok := byGrade[strings.ToUpper(grade)]; ok {
			return d
		}
		return def
	})
}

func (r createOrderRequest) portfolioSource() (pipeline.PortfolioSource, error) {
	if r.PortfolioID == "" {
		return pipeline.PortfolioSource{}, nil
	}
	src, err := pipeline.SourceOf[*int64](r.PortfolioID)
	if err != nil {
		return pipeline.PortfolioSource{}, fmt.Errorf("portfolioId: %w", err)
	}
	return src, nil
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	amount, err := req.amountSource()
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	portfolio, err := req.portfolioSource()
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	batch, err := oh.service.CreateOrder(ctx, req.Loans, amount, portfolio)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, batch)
}

type submitOrdersRequest struct {
	Orders []domain.Order `json:"orders" binding:"required"`
}

type confirmationResponse struct {
	LoanID          int64       `json:"loanId"`
	RequestedAmount jsonDecimal `json:"requestedAmount"`
	InvestedAmount  jsonDecimal `json:"investedAmount"`
	ExecutionStatus []string    `json:"executionStatus"`
}

type submissionResponse struct {
	OrderInstructID    int64                  `json:"orderInstructId"`
	OrderConfirmations []confirmationResponse `json:"orderConfirmations"`
}

func newSubmissionResponse(result *domain.SubmissionResult) submissionResponse {
	resp := submissionResponse{
		OrderInstructID:    result.OrderInstructID,
		OrderConfirmations: make([]confirmationResponse, 0, len(result.OrderConfirmations)),
	}
	for _, c := range result.OrderConfirmations {
		resp.OrderConfirmations = append(resp.OrderConfirmations, confirmationResponse{
			LoanID:          c.LoanID,
			RequestedAmount: jsonDecimal(c.RequestedAmount),
			InvestedAmount:  jsonDecimal(c.InvestedAmount),
			ExecutionStatus: c.ExecutionStatus,
		})
	}
	return resp
}

func (oh *OrderHandler) SubmitOrders(ctx *gin.Context) {
	req := submitOrdersRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if len(req.Orders) == 0 {
		oh.handleError(ctx, domain.ErrEmptyLoanList)
		return
	}

	result, err := oh.service.SubmitOrders(ctx, req.Orders)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newSubmissionResponse(result))
}
