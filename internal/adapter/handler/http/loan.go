package http

import (
	"strconv"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoanHandler struct {
	Handler
	service port.Service
}

func NewLoanHandler(service port.Service, logger *zap.Logger) (*LoanHandler, error) {
	return &LoanHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type loansResponse struct {
	Loans []domain.Loan `json:"loans"`
}

func (lh *LoanHandler) ListLoans(ctx *gin.Context) {
	opts := &domain.ListOptions{InvestorID: getAuthPayload(ctx).InvestorID}

	if raw, ok := ctx.GetQuery("showAll"); ok {
		showAll, err := strconv.ParseBool(raw)
		if err != nil {
			lh.handleValidationError(ctx, err)
			return
		}
		opts.ShowAll = &showAll
	}

	loans, err := lh.service.ListLoans(ctx, opts)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	lh.handleSuccess(ctx, loansResponse{Loans: loans})
}

func (lh *LoanHandler) FilterLoans(ctx *gin.Context) {
	criteria := domain.Criteria{}
	err := ctx.ShouldBindJSON(&criteria)
	if err != nil {
		lh.handleValidationError(ctx, err)
		return
	}

	loans, err := lh.service.FilterByCriteria(ctx, criteria)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	lh.handleSuccess(ctx, loansResponse{Loans: loans})
}
