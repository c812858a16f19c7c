package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type PresetHandler struct {
	Handler
	service port.Service
}

func NewPresetHandler(service port.Service, logger *zap.Logger) (*PresetHandler, error) {
	return &PresetHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type presetRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Criteria        domain.Criteria `json:"criteria"`
	RequestedAmount json.Number     `json:"requestedAmount"`
	PortfolioID     *int64          `json:"portfolioId"`
}

type presetResponse struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Criteria        domain.Criteria `json:"criteria"`
	RequestedAmount jsonDecimal     `json:"requestedAmount"`
	PortfolioID     *int64          `json:"portfolioId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func newPresetResponse(p *domain.Preset) presetResponse {
	return presetResponse{
		Name:            p.Name,
		Description:     p.Description,
		Criteria:        p.Criteria,
		RequestedAmount: jsonDecimal(p.RequestedAmount),
		PortfolioID:     p.PortfolioID,
		CreatedAt:       p.CreatedAt,
	}
}

func (ph *PresetHandler) SavePreset(ctx *gin.Context) {
	req := presetRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	preset := &domain.Preset{
		Name:        req.Name,
		Description: req.Description,
		Criteria:    req.Criteria,
		PortfolioID: req.PortfolioID,
	}
	if req.RequestedAmount != "" {
		preset.RequestedAmount, err = decimal.Parse(req.RequestedAmount.String())
		if err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
	}

	saved, err := ph.service.SavePreset(ctx, preset)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPresetResponse(saved), http.StatusCreated)
}

func (ph *PresetHandler) ListPresets(ctx *gin.Context) {
	list, err := ph.service.ListPresets(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]presetResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newPresetResponse(p))
	}
	ph.handleSuccess(ctx, result)
}

func (ph *PresetHandler) GetPreset(ctx *gin.Context) {
	preset, err := ph.service.GetPreset(ctx, ctx.Param("name"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPresetResponse(preset))
}

func (ph *PresetHandler) DeletePreset(ctx *gin.Context) {
	err := ph.service.DeletePreset(ctx, ctx.Param("name"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ph *PresetHandler) Invest(ctx *gin.Context) {
	result, err := ph.service.Invest(ctx, ctx.Param("name"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newSubmissionResponse(result))
}
