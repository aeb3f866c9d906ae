package usecase

import (
	"context"
	"database/sql"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/assetpath"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase/dto"
)

// notFound reports whether a repository write matched no rows.
func notFound(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}

// ContentUseCase manages the ordered homepage widgets: services,
// partners and statistics.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	assetUC     *AssetUseCase
	logger      *zap.Logger
}

func NewContentUseCase(
	contentRepo repository.ContentRepository,
	assetUC *AssetUseCase,
	logger *zap.Logger,
) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		assetUC:     assetUC,
		logger:      logger,
	}
}

func (uc *ContentUseCase) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := uc.contentRepo.ListServices(ctx)
	if err != nil {
		uc.logger.Error("Failed to list services", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return services, nil
}

func (uc *ContentUseCase) CreateService(ctx context.Context, req dto.ServiceRequest) (*domain.Service, error) {
	if err := checkIcon(req.IconSVG); err != nil {
		return nil, err
	}

	s := &domain.Service{
		Title:        req.Title,
		Description:  req.Description,
		IconSVG:      req.IconSVG,
		ImagePath:    req.ImagePath,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.contentRepo.CreateService(ctx, s); err != nil {
		uc.logger.Error("Failed to create service", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return s, nil
}

func (uc *ContentUseCase) UpdateService(ctx context.Context, id string, req dto.ServiceRequest) (*domain.Service, error) {
	if err := checkIcon(req.IconSVG); err != nil {
		return nil, err
	}

	s := &domain.Service{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		IconSVG:      req.IconSVG,
		ImagePath:    req.ImagePath,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.contentRepo.UpdateService(ctx, s); err != nil {
		uc.logger.Error("Failed to update service", zap.String("service_id", id), zap.Error(err))
		if notFound(err) {
			return nil, errors.ErrRecordNotFound
		}
		return nil, errors.ErrDatabaseError
	}
	return s, nil
}

func (uc *ContentUseCase) DeleteService(ctx context.Context, id string) error {
	services, err := uc.ListServices(ctx)
	if err != nil {
		return err
	}
	for _, s := range services {
		if s.ID == id && s.ImagePath != "" {
			uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, []string{s.ImagePath})
		}
	}

	if err := uc.contentRepo.DeleteService(ctx, id); err != nil {
		uc.logger.Error("Failed to delete service", zap.String("service_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *ContentUseCase) SetServiceActive(ctx context.Context, id string, active bool) error {
	if err := uc.contentRepo.SetServiceActive(ctx, id, active); err != nil {
		uc.logger.Error("Failed to toggle service", zap.String("service_id", id), zap.Error(err))
		if notFound(err) {
			return errors.ErrRecordNotFound
		}
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *ContentUseCase) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := uc.contentRepo.ListPartners(ctx)
	if err != nil {
		uc.logger.Error("Failed to list partners", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return partners, nil
}

func (uc *ContentUseCase) CreatePartner(ctx context.Context, req dto.PartnerRequest) (*domain.Partner, error) {
	p := &domain.Partner{
		Name:         req.Name,
		LogoPath:     req.LogoPath,
		WebsiteURL:   req.WebsiteURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.contentRepo.CreatePartner(ctx, p); err != nil {
		uc.logger.Error("Failed to create partner", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return p, nil
}

func (uc *ContentUseCase) UpdatePartner(ctx context.Context, id string, req dto.PartnerRequest) (*domain.Partner, error) {
	p := &domain.Partner{
		ID:           id,
		Name:         req.Name,
		LogoPath:     req.LogoPath,
		WebsiteURL:   req.WebsiteURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.contentRepo.UpdatePartner(ctx, p); err != nil {
		uc.logger.Error("Failed to update partner", zap.String("partner_id", id), zap.Error(err))
		if notFound(err) {
			return nil, errors.ErrRecordNotFound
		}
		return nil, errors.ErrDatabaseError
	}
	return p, nil
}

func (uc *ContentUseCase) DeletePartner(ctx context.Context, id string) error {
	partners, err := uc.ListPartners(ctx)
	if err != nil {
		return err
	}
	for _, p := range partners {
		if p.ID == id && p.LogoPath != "" {
			uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, []string{p.LogoPath})
		}
	}

	if err := uc.contentRepo.DeletePartner(ctx, id); err != nil {
		uc.logger.Error("Failed to delete partner", zap.String("partner_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *ContentUseCase) SetPartnerActive(ctx context.Context, id string, active bool) error {
	if err := uc.contentRepo.SetPartnerActive(ctx, id, active); err != nil {
		uc.logger.Error("Failed to toggle partner", zap.String("partner_id", id), zap.Error(err))
		if notFound(err) {
			return errors.ErrRecordNotFound
		}
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *ContentUseCase) ListStats(ctx context.Context) ([]domain.Stat, error) {
	stats, err := uc.contentRepo.ListStats(ctx)
	if err != nil {
		uc.logger.Error("Failed to list stats", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stats, nil
}

// CreateStat enforces the active stat cap when the new stat arrives
// already active.
func (uc *ContentUseCase) CreateStat(ctx context.Context, req dto.StatRequest) (*domain.Stat, error) {
	if err := checkIcon(req.IconSVG); err != nil {
		return nil, err
	}

	if req.IsActive {
		if err := uc.checkStatCap(ctx); err != nil {
			return nil, err
		}
	}

	s := &domain.Stat{
		Label:        req.Label,
		Value:        req.Value,
		IconSVG:      req.IconSVG,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.contentRepo.CreateStat(ctx, s); err != nil {
		uc.logger.Error("Failed to create stat", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return s, nil
}

func (uc *ContentUseCase) UpdateStat(ctx context.Context, id string, req dto.StatRequest) (*domain.Stat, error) {
	if err := checkIcon(req.IconSVG); err != nil {
		return nil, err
	}

	if req.IsActive {
		existing, err := uc.contentRepo.GetStat(ctx, id)
		if err != nil {
			uc.logger.Error("Failed to load stat", zap.String("stat_id", id), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		if existing == nil {
			return nil, errors.ErrRecordNotFound
		}
		// Only a newly activated stat counts against the cap.
		if !existing.IsActive {
			if err := uc.checkStatCap(ctx); err != nil {
				return nil, err
			}
		}
	}

	s := &domain.Stat{
		ID:           id,
		Label:        req.Label,
		Value:        req.Value,
		IconSVG:      req.IconSVG,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := uc.contentRepo.UpdateStat(ctx, s); err != nil {
		uc.logger.Error("Failed to update stat", zap.String("stat_id", id), zap.Error(err))
		if notFound(err) {
			return nil, errors.ErrRecordNotFound
		}
		return nil, errors.ErrDatabaseError
	}
	return s, nil
}

func (uc *ContentUseCase) DeleteStat(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteStat(ctx, id); err != nil {
		uc.logger.Error("Failed to delete stat", zap.String("stat_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *ContentUseCase) SetStatActive(ctx context.Context, id string, active bool) error {
	if active {
		existing, err := uc.contentRepo.GetStat(ctx, id)
		if err != nil {
			uc.logger.Error("Failed to load stat", zap.String("stat_id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
		if existing == nil {
			return errors.ErrRecordNotFound
		}
		if !existing.IsActive {
			if err := uc.checkStatCap(ctx); err != nil {
				return err
			}
		}
	}

	if err := uc.contentRepo.SetStatActive(ctx, id, active); err != nil {
		uc.logger.Error("Failed to toggle stat", zap.String("stat_id", id), zap.Error(err))
		if notFound(err) {
			return errors.ErrRecordNotFound
		}
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *ContentUseCase) checkStatCap(ctx context.Context) error {
	count, err := uc.contentRepo.CountActiveStats(ctx)
	if err != nil {
		uc.logger.Error("Failed to count active stats", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if count >= domain.MaxActiveStats {
		return errors.ErrActiveStatLimit
	}
	return nil
}
