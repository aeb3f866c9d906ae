package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

// SettingsRepository covers the singleton settings tables and the map
// location pins. Saves are upserts keyed by domain.SingletonID.
type SettingsRepository interface {
	GetHero(ctx context.Context) (*domain.HeroSettings, error)
	UpsertHero(ctx context.Context, s *domain.HeroSettings) error

	GetLogo(ctx context.Context) (*domain.LogoSettings, error)
	UpsertLogo(ctx context.Context, s *domain.LogoSettings) error

	GetMap(ctx context.Context) (*domain.MapSettings, error)
	UpsertMap(ctx context.Context, s *domain.MapSettings) error

	ListMapLocations(ctx context.Context) ([]domain.MapLocation, error)
	CreateMapLocation(ctx context.Context, loc *domain.MapLocation) error
	UpdateMapLocation(ctx context.Context, loc *domain.MapLocation) error
	DeleteMapLocation(ctx context.Context, id string) error

	GetFeatured(ctx context.Context) (*domain.FeaturedSectionSettings, error)
	UpsertFeatured(ctx context.Context, s *domain.FeaturedSectionSettings) error

	GetOpportunity(ctx context.Context) (*domain.OpportunitySettings, error)
	UpsertOpportunity(ctx context.Context, s *domain.OpportunitySettings) error
}
