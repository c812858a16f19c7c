package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrPresetsDisabled: http.StatusNotImplemented,

	domain.ErrTokenCreation:              http.StatusInternalServerError,
	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,

	domain.ErrBadRequest:               http.StatusBadRequest,
	domain.ErrTransport:                http.StatusBadGateway,
	domain.ErrUnexpectedResponseFormat: http.StatusBadGateway,

	domain.ErrMissingCredential: http.StatusServiceUnavailable,
	domain.ErrMissingInvestorID: http.StatusServiceUnavailable,
	domain.ErrMissingKey:        http.StatusServiceUnavailable,

	domain.ErrInvalidLoan:   http.StatusUnprocessableEntity,
	domain.ErrEmptyLoanList: http.StatusUnprocessableEntity,
	domain.ErrTypeMismatch:  http.StatusUnprocessableEntity,
}

// errorStatus looks the error up as is first, then by its wrapped chain.
func errorStatus(err error) (int, bool) {
	for target, code := range errorStatusMap {
		if err == target {
			return code, true
		}
	}
	for target, code := range errorStatusMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	var limited *domain.RateLimitedError
	if errors.As(err, &limited) {
		ctx.Header("Retry-After", strconv.Itoa(int(limited.RetryAfter.Seconds())))
		ctx.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}

	statusCode, ok := errorStatus(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Error: domain.ErrInternal.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func handleAbort(ctx *gin.Context, err error) {
	statusCode, _ := errorStatus(err)
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}
