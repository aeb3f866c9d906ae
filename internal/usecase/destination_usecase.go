package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase/dto"
)

// DestinationUseCase groups destination-flagged tours by region and
// decorates each group with its region image.
type DestinationUseCase struct {
	tourRepo   repository.TourRepository
	regionRepo repository.RegionImageRepository
	logger     *zap.Logger
}

func NewDestinationUseCase(
	tourRepo repository.TourRepository,
	regionRepo repository.RegionImageRepository,
	logger *zap.Logger,
) *DestinationUseCase {
	return &DestinationUseCase{
		tourRepo:   tourRepo,
		regionRepo: regionRepo,
		logger:     logger,
	}
}

// List returns one group per region, in first-seen order of the
// underlying tour listing. Only tours flagged for the destinations page
// are included.
func (uc *DestinationUseCase) List(ctx context.Context) ([]domain.Destination, error) {
	summaries, err := uc.tourRepo.ListSummaries(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tour summaries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	var order []string
	grouped := make(map[string][]domain.TourSummary)
	for _, s := range summaries {
		if !s.DestinationStatus {
			continue
		}
		if _, seen := grouped[s.Region]; !seen {
			order = append(order, s.Region)
		}
		grouped[s.Region] = append(grouped[s.Region], s)
	}

	if len(order) == 0 {
		return []domain.Destination{}, nil
	}

	images, err := uc.regionRepo.GetByRegions(ctx, order)
	if err != nil {
		uc.logger.Error("Failed to load region images", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	imageByRegion := make(map[string]string, len(images))
	for _, img := range images {
		imageByRegion[img.Region] = img.ImagePath
	}

	destinations := make([]domain.Destination, 0, len(order))
	for _, region := range order {
		destinations = append(destinations, domain.Destination{
			Region:    region,
			ImagePath: imageByRegion[region],
			Tours:     grouped[region],
		})
	}
	return destinations, nil
}

// SetRegionImage stores or replaces the image shown on a region group.
func (uc *DestinationUseCase) SetRegionImage(ctx context.Context, req dto.RegionImageRequest) error {
	img := &domain.RegionImage{
		Region:    req.Region,
		ImagePath: req.ImagePath,
	}
	if err := uc.regionRepo.Upsert(ctx, img); err != nil {
		uc.logger.Error("Failed to upsert region image",
			zap.String("region", req.Region),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
