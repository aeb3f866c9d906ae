package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/assetpath"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase/dto"
)

// SettingsUseCase manages the singleton site sections: hero, logo, map
// with its location pins, the featured section and the opportunity page.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	assetUC      *AssetUseCase
	logger       *zap.Logger
}

func NewSettingsUseCase(
	settingsRepo repository.SettingsRepository,
	assetUC *AssetUseCase,
	logger *zap.Logger,
) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		assetUC:      assetUC,
		logger:       logger,
	}
}

func (uc *SettingsUseCase) GetHero(ctx context.Context) (*domain.HeroSettings, error) {
	hero, err := uc.settingsRepo.GetHero(ctx)
	if err != nil {
		uc.logger.Error("Failed to load hero settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return hero, nil
}

func (uc *SettingsUseCase) SaveHero(ctx context.Context, req dto.HeroSettingsRequest) (*domain.HeroSettings, error) {
	old, err := uc.GetHero(ctx)
	if err != nil {
		return nil, err
	}

	hero := &domain.HeroSettings{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImagePath: req.ImagePath,
	}
	if err := uc.settingsRepo.UpsertHero(ctx, hero); err != nil {
		uc.logger.Error("Failed to save hero settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if old != nil && old.ImagePath != "" && old.ImagePath != req.ImagePath {
		uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, []string{old.ImagePath})
	}
	return hero, nil
}

func (uc *SettingsUseCase) GetLogo(ctx context.Context) (*domain.LogoSettings, error) {
	logo, err := uc.settingsRepo.GetLogo(ctx)
	if err != nil {
		uc.logger.Error("Failed to load logo settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return logo, nil
}

// SaveLogo points the singleton logo row at a new stored file and
// drops the previous one.
func (uc *SettingsUseCase) SaveLogo(ctx context.Context, logoPath string) (*domain.LogoSettings, error) {
	old, err := uc.GetLogo(ctx)
	if err != nil {
		return nil, err
	}

	logo := &domain.LogoSettings{LogoPath: logoPath}
	if err := uc.settingsRepo.UpsertLogo(ctx, logo); err != nil {
		uc.logger.Error("Failed to save logo settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if old != nil && old.LogoPath != "" && old.LogoPath != logoPath {
		uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, []string{old.LogoPath})
	}
	return logo, nil
}

func (uc *SettingsUseCase) GetMap(ctx context.Context) (*domain.MapSettings, error) {
	m, err := uc.settingsRepo.GetMap(ctx)
	if err != nil {
		uc.logger.Error("Failed to load map settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return m, nil
}

func (uc *SettingsUseCase) SaveMap(ctx context.Context, req dto.MapSettingsRequest) (*domain.MapSettings, error) {
	old, err := uc.GetMap(ctx)
	if err != nil {
		return nil, err
	}

	m := &domain.MapSettings{
		Title:        req.Title,
		MapImagePath: req.MapImagePath,
	}
	if err := uc.settingsRepo.UpsertMap(ctx, m); err != nil {
		uc.logger.Error("Failed to save map settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if old != nil && old.MapImagePath != "" && old.MapImagePath != req.MapImagePath {
		uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, []string{old.MapImagePath})
	}
	return m, nil
}

func (uc *SettingsUseCase) ListMapLocations(ctx context.Context) ([]domain.MapLocation, error) {
	locations, err := uc.settingsRepo.ListMapLocations(ctx)
	if err != nil {
		uc.logger.Error("Failed to list map locations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return locations, nil
}

func (uc *SettingsUseCase) CreateMapLocation(ctx context.Context, req dto.MapLocationRequest) (*domain.MapLocation, error) {
	loc := &domain.MapLocation{
		Name:     req.Name,
		XPercent: req.XPercent,
		YPercent: req.YPercent,
	}
	if err := uc.settingsRepo.CreateMapLocation(ctx, loc); err != nil {
		uc.logger.Error("Failed to create map location", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return loc, nil
}

func (uc *SettingsUseCase) UpdateMapLocation(ctx context.Context, id string, req dto.MapLocationRequest) (*domain.MapLocation, error) {
	loc := &domain.MapLocation{
		ID:       id,
		Name:     req.Name,
		XPercent: req.XPercent,
		YPercent: req.YPercent,
	}
	if err := uc.settingsRepo.UpdateMapLocation(ctx, loc); err != nil {
		uc.logger.Error("Failed to update map location", zap.String("location_id", id), zap.Error(err))
		if notFound(err) {
			return nil, errors.ErrRecordNotFound
		}
		return nil, errors.ErrDatabaseError
	}
	return loc, nil
}

func (uc *SettingsUseCase) DeleteMapLocation(ctx context.Context, id string) error {
	if err := uc.settingsRepo.DeleteMapLocation(ctx, id); err != nil {
		uc.logger.Error("Failed to delete map location", zap.String("location_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *SettingsUseCase) GetFeatured(ctx context.Context) (*domain.FeaturedSectionSettings, error) {
	featured, err := uc.settingsRepo.GetFeatured(ctx)
	if err != nil {
		uc.logger.Error("Failed to load featured section settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return featured, nil
}

func (uc *SettingsUseCase) SaveFeatured(ctx context.Context, req dto.FeaturedSectionRequest) (*domain.FeaturedSectionSettings, error) {
	featured := &domain.FeaturedSectionSettings{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.settingsRepo.UpsertFeatured(ctx, featured); err != nil {
		uc.logger.Error("Failed to save featured section settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return featured, nil
}

func (uc *SettingsUseCase) GetOpportunity(ctx context.Context) (*domain.OpportunitySettings, error) {
	opp, err := uc.settingsRepo.GetOpportunity(ctx)
	if err != nil {
		uc.logger.Error("Failed to load opportunity settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return opp, nil
}

func (uc *SettingsUseCase) SaveOpportunity(ctx context.Context, req dto.OpportunitySettingsRequest) (*domain.OpportunitySettings, error) {
	old, err := uc.GetOpportunity(ctx)
	if err != nil {
		return nil, err
	}

	opp := &domain.OpportunitySettings{
		HeroTitle:     req.HeroTitle,
		HeroSubtitle:  req.HeroSubtitle,
		HeroImagePath: req.HeroImagePath,
		LeftTitle:     req.LeftTitle,
		LeftText:      req.LeftText,
		RightImage1:   req.RightImage1,
		RightImage2:   req.RightImage2,
		BottomTitle:   req.BottomTitle,
		BottomText:    req.BottomText,
		BottomImage:   req.BottomImage,
	}
	if err := uc.settingsRepo.UpsertOpportunity(ctx, opp); err != nil {
		uc.logger.Error("Failed to save opportunity settings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if old != nil {
		uc.queueReplacedOpportunityImages(ctx, old, opp)
	}
	return opp, nil
}

func (uc *SettingsUseCase) queueReplacedOpportunityImages(ctx context.Context, old, updated *domain.OpportunitySettings) {
	kept := map[string]bool{
		updated.HeroImagePath: true,
		updated.RightImage1:   true,
		updated.RightImage2:   true,
		updated.BottomImage:   true,
	}

	var dropped []string
	for _, p := range []string{old.HeroImagePath, old.RightImage1, old.RightImage2, old.BottomImage} {
		if p != "" && !kept[p] {
			dropped = append(dropped, p)
		}
	}
	uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, dropped)
}
