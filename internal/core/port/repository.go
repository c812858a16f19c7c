package port

import (
	"context"

	"github.com/MikeRez0/lcmanager/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type PresetRepository interface {
	CreatePreset(ctx context.Context, preset *domain.Preset) (*domain.Preset, error)
	ReadPreset(ctx context.Context, name string) (*domain.Preset, error)
	ListPresets(ctx context.Context) ([]*domain.Preset, error)
	DeletePreset(ctx context.Context, name string) error
}
