package http

import (
	"crypto/subtle"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Handler
	service      port.Service
	tokenService port.TokenService
}

type loginRequest struct {
	Key string `json:"key" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(service port.Service, tokenService port.TokenService, logger *zap.Logger) (*AuthHandler, error) {
	return &AuthHandler{
		Handler:      *NewHandler(logger),
		service:      service,
		tokenService: tokenService,
	}, nil
}

// Login exchanges the marketplace API key for a gateway token bound to the
// configured investor account.
func (ah *AuthHandler) Login(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	creds := ah.service.Credentials()
	if err := creds.Validate(); err != nil {
		ah.handleError(ctx, err)
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(creds.Key)) != 1 {
		ah.handleError(ctx, domain.ErrInvalidCredentials)
		return
	}

	token, err := ah.tokenService.CreateToken(port.TokenPayload{InvestorID: creds.InvestorID})
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.logger.Info("Token issued", zap.Int64("investor", creds.InvestorID))
	ah.handleSuccess(ctx, loginResponse{Token: token})
}
