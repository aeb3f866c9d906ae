package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

type AgencyRepository interface {
	ListAgencies(ctx context.Context) ([]domain.Agency, error)
	CreateAgency(ctx context.Context, a *domain.Agency) error
	UpdateAgency(ctx context.Context, a *domain.Agency) error
	DeleteAgency(ctx context.Context, id string) error

	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	CreateProfile(ctx context.Context, p *domain.Profile) error
	DeleteProfile(ctx context.Context, id string) error
}
