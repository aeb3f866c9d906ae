package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type regionImageRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewRegionImageRepository(db *DB, logger *zap.Logger) repository.RegionImageRepository {
	return &regionImageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *regionImageRepository) GetByRegions(ctx context.Context, regions []string) ([]domain.RegionImage, error) {
	if len(regions) == 0 {
		return nil, nil
	}

	query := `SELECT region, image_path FROM region_images WHERE region = ANY($1)`

	var images []domain.RegionImage
	if err := r.db.SelectContext(ctx, &images, query, pq.Array(regions)); err != nil {
		return nil, fmt.Errorf("select region images: %w", err)
	}
	return images, nil
}

func (r *regionImageRepository) Upsert(ctx context.Context, img *domain.RegionImage) error {
	query := `
		INSERT INTO region_images (region, image_path)
		VALUES (:region, :image_path)
		ON CONFLICT (region) DO UPDATE SET image_path = EXCLUDED.image_path
	`
	if _, err := r.db.NamedExecContext(ctx, query, img); err != nil {
		return fmt.Errorf("upsert region image: %w", err)
	}
	return nil
}
