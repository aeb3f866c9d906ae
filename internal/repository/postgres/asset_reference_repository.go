package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type assetReferenceRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewAssetReferenceRepository(db *DB, logger *zap.Logger) repository.AssetReferenceRepository {
	return &assetReferenceRepository{
		db:     db,
		logger: logger,
	}
}

// Every column that can hold a storage path. The jsonb content_images
// column on blog posts is unnested separately.
const referencedPathsQuery = `
	SELECT hero_image_path AS path FROM tours WHERE hero_image_path = ANY($1)
	UNION
	SELECT storage_path FROM tour_images WHERE storage_path = ANY($1)
	UNION
	SELECT image_path FROM hero_settings WHERE image_path = ANY($1)
	UNION
	SELECT logo_path FROM logo_settings WHERE logo_path = ANY($1)
	UNION
	SELECT map_image_path FROM map_settings WHERE map_image_path = ANY($1)
	UNION
	SELECT hero_image_path FROM opportunity_settings WHERE hero_image_path = ANY($1)
	UNION
	SELECT right_image_1 FROM opportunity_settings WHERE right_image_1 = ANY($1)
	UNION
	SELECT right_image_2 FROM opportunity_settings WHERE right_image_2 = ANY($1)
	UNION
	SELECT bottom_image FROM opportunity_settings WHERE bottom_image = ANY($1)
	UNION
	SELECT hero_image_path FROM tour_type_settings WHERE hero_image_path = ANY($1)
	UNION
	SELECT right_image_1 FROM tour_type_settings WHERE right_image_1 = ANY($1)
	UNION
	SELECT right_image_2 FROM tour_type_settings WHERE right_image_2 = ANY($1)
	UNION
	SELECT image_path FROM services WHERE image_path = ANY($1)
	UNION
	SELECT logo_path FROM partners WHERE logo_path = ANY($1)
	UNION
	SELECT image_path FROM region_images WHERE image_path = ANY($1)
	UNION
	SELECT hero_image FROM blog_posts WHERE hero_image = ANY($1)
	UNION
	SELECT author_image FROM blog_posts WHERE author_image = ANY($1)
	UNION
	SELECT img->>'path' FROM blog_posts, jsonb_array_elements(content_images) AS img
	WHERE img->>'path' = ANY($1)
`

func (r *assetReferenceRepository) ReferencedPaths(ctx context.Context, paths []string) (map[string]bool, error) {
	if len(paths) == 0 {
		return map[string]bool{}, nil
	}

	var found []string
	if err := r.db.SelectContext(ctx, &found, referencedPathsQuery, pq.Array(paths)); err != nil {
		return nil, fmt.Errorf("select referenced paths: %w", err)
	}

	referenced := make(map[string]bool, len(found))
	for _, p := range found {
		referenced[p] = true
	}
	return referenced, nil
}
