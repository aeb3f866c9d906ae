package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase/dto"
)

type AgencyUseCase struct {
	agencyRepo repository.AgencyRepository
	logger     *zap.Logger
}

func NewAgencyUseCase(agencyRepo repository.AgencyRepository, logger *zap.Logger) *AgencyUseCase {
	return &AgencyUseCase{
		agencyRepo: agencyRepo,
		logger:     logger,
	}
}

func (uc *AgencyUseCase) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	agencies, err := uc.agencyRepo.ListAgencies(ctx)
	if err != nil {
		uc.logger.Error("Failed to list agencies", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return agencies, nil
}

func (uc *AgencyUseCase) CreateAgency(ctx context.Context, req dto.AgencyRequest) (*domain.Agency, error) {
	a := agencyFromRequest(req)
	if err := uc.agencyRepo.CreateAgency(ctx, a); err != nil {
		uc.logger.Error("Failed to create agency", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Agency created",
		zap.String("agency_id", a.ID),
		zap.String("name", a.AgencyName))
	return a, nil
}

func (uc *AgencyUseCase) UpdateAgency(ctx context.Context, id string, req dto.AgencyRequest) (*domain.Agency, error) {
	a := agencyFromRequest(req)
	a.ID = id
	if err := uc.agencyRepo.UpdateAgency(ctx, a); err != nil {
		uc.logger.Error("Failed to update agency", zap.String("agency_id", id), zap.Error(err))
		if notFound(err) {
			return nil, errors.ErrRecordNotFound
		}
		return nil, errors.ErrDatabaseError
	}
	return a, nil
}

func (uc *AgencyUseCase) DeleteAgency(ctx context.Context, id string) error {
	if err := uc.agencyRepo.DeleteAgency(ctx, id); err != nil {
		uc.logger.Error("Failed to delete agency", zap.String("agency_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (uc *AgencyUseCase) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := uc.agencyRepo.ListProfiles(ctx)
	if err != nil {
		uc.logger.Error("Failed to list profiles", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return profiles, nil
}

func (uc *AgencyUseCase) CreateProfile(ctx context.Context, req dto.ProfileRequest) (*domain.Profile, error) {
	p := &domain.Profile{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
	}
	if err := uc.agencyRepo.CreateProfile(ctx, p); err != nil {
		uc.logger.Error("Failed to create profile", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return p, nil
}

func (uc *AgencyUseCase) DeleteProfile(ctx context.Context, id string) error {
	if err := uc.agencyRepo.DeleteProfile(ctx, id); err != nil {
		uc.logger.Error("Failed to delete profile", zap.String("profile_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func agencyFromRequest(req dto.AgencyRequest) *domain.Agency {
	return &domain.Agency{
		AgencyName:  req.AgencyName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		MobilePhone: req.MobilePhone,
		City:        req.City,
		Country:     req.Country,
		Address:     req.Address,
	}
}
