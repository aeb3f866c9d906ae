package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

type TourTypeRepository interface {
	List(ctx context.Context) ([]domain.TourTypeSettings, error)
	GetByID(ctx context.Context, id string) (*domain.TourTypeSettings, error)
	Create(ctx context.Context, t *domain.TourTypeSettings) error
	Update(ctx context.Context, t *domain.TourTypeSettings) error
	Delete(ctx context.Context, id string) error
}
