package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

// ContentRepository covers the ordered homepage widgets: services,
// partners and stats.
type ContentRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) error
	UpdateService(ctx context.Context, s *domain.Service) error
	DeleteService(ctx context.Context, id string) error

	ListPartners(ctx context.Context) ([]domain.Partner, error)
	CreatePartner(ctx context.Context, p *domain.Partner) error
	UpdatePartner(ctx context.Context, p *domain.Partner) error
	DeletePartner(ctx context.Context, id string) error

	ListStats(ctx context.Context) ([]domain.Stat, error)
	GetStat(ctx context.Context, id string) (*domain.Stat, error)
	CreateStat(ctx context.Context, s *domain.Stat) error
	UpdateStat(ctx context.Context, s *domain.Stat) error
	DeleteStat(ctx context.Context, id string) error

	// CountActiveStats backs the max-3-active invariant.
	CountActiveStats(ctx context.Context) (int, error)

	// SetActive toggles the is_active column of one widget table.
	SetServiceActive(ctx context.Context, id string, active bool) error
	SetPartnerActive(ctx context.Context, id string, active bool) error
	SetStatActive(ctx context.Context, id string, active bool) error
}
