package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

type RegionImageRepository interface {
	// GetByRegions fetches image rows for the given region names in one query.
	GetByRegions(ctx context.Context, regions []string) ([]domain.RegionImage, error)

	// Upsert replaces the image for a region, keyed by the region name.
	Upsert(ctx context.Context, img *domain.RegionImage) error
}
