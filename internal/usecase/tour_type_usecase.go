package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/assetpath"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/svgsafe"
	"github.com/travel-admin/internal/usecase/dto"
)

type TourTypeUseCase struct {
	tourTypeRepo repository.TourTypeRepository
	assetUC      *AssetUseCase
	logger       *zap.Logger
}

func NewTourTypeUseCase(
	tourTypeRepo repository.TourTypeRepository,
	assetUC *AssetUseCase,
	logger *zap.Logger,
) *TourTypeUseCase {
	return &TourTypeUseCase{
		tourTypeRepo: tourTypeRepo,
		assetUC:      assetUC,
		logger:       logger,
	}
}

func (uc *TourTypeUseCase) List(ctx context.Context) ([]domain.TourTypeSettings, error) {
	types, err := uc.tourTypeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tour types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return types, nil
}

func (uc *TourTypeUseCase) GetByID(ctx context.Context, id string) (*domain.TourTypeSettings, error) {
	t, err := uc.tourTypeRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load tour type", zap.String("tour_type_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if t == nil {
		return nil, errors.ErrRecordNotFound
	}
	return t, nil
}

func (uc *TourTypeUseCase) Create(ctx context.Context, req dto.TourTypeRequest) (*domain.TourTypeSettings, error) {
	if err := checkIcon(req.TypeIconSVG); err != nil {
		return nil, err
	}

	t := tourTypeFromRequest(req)
	if err := uc.tourTypeRepo.Create(ctx, t); err != nil {
		uc.logger.Error("Failed to create tour type", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Tour type created",
		zap.String("tour_type_id", t.ID),
		zap.String("type", t.Type))
	return t, nil
}

func (uc *TourTypeUseCase) Update(ctx context.Context, id string, req dto.TourTypeRequest) (*domain.TourTypeSettings, error) {
	existing, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkIcon(req.TypeIconSVG); err != nil {
		return nil, err
	}

	t := tourTypeFromRequest(req)
	t.ID = id
	if err := uc.tourTypeRepo.Update(ctx, t); err != nil {
		uc.logger.Error("Failed to update tour type", zap.String("tour_type_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.queueDroppedTypeImages(ctx, existing, t)
	return t, nil
}

func (uc *TourTypeUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, t.AssetPaths())

	if err := uc.tourTypeRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete tour type", zap.String("tour_type_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	uc.logger.Info("Tour type deleted", zap.String("tour_type_id", id))
	return nil
}

func (uc *TourTypeUseCase) queueDroppedTypeImages(ctx context.Context, old, updated *domain.TourTypeSettings) {
	kept := make(map[string]bool)
	for _, p := range updated.AssetPaths() {
		kept[p] = true
	}

	var dropped []string
	for _, p := range old.AssetPaths() {
		if !kept[p] {
			dropped = append(dropped, p)
		}
	}
	uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, dropped)
}

// checkIcon rejects inline SVG markup carrying scripts or event handlers.
func checkIcon(markup string) error {
	if err := svgsafe.Check(markup); err != nil {
		return errors.ErrUnsafeSVG.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return nil
}

func tourTypeFromRequest(req dto.TourTypeRequest) *domain.TourTypeSettings {
	return &domain.TourTypeSettings{
		Type:          strings.ToLower(req.Type),
		TypeIconSVG:   req.TypeIconSVG,
		HeaderTitle:   req.HeaderTitle,
		HeroTitle:     req.HeroTitle,
		HeroSubtitle:  req.HeroSubtitle,
		HeroImagePath: req.HeroImagePath,
		SectionTitle:  req.SectionTitle,
		SectionText:   req.SectionText,
		RightImage1:   req.RightImage1,
		RightImage2:   req.RightImage2,
	}
}
