package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type contentRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewContentRepository(db *DB, logger *zap.Logger) repository.ContentRepository {
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contentRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT id, title, description, icon_svg, image_path, display_order, is_active, created_at
		FROM services ORDER BY display_order
	`
	var services []domain.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	return services, nil
}

func (r *contentRepository) CreateService(ctx context.Context, s *domain.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
		INSERT INTO services (id, title, description, icon_svg, image_path, display_order, is_active, created_at)
		VALUES (:id, :title, :description, :icon_svg, :image_path, :display_order, :is_active, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *contentRepository) UpdateService(ctx context.Context, s *domain.Service) error {
	query := `
		UPDATE services SET
			title = :title,
			description = :description,
			icon_svg = :icon_svg,
			image_path = :image_path,
			display_order = :display_order,
			is_active = :is_active
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *contentRepository) DeleteService(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (r *contentRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT id, name, logo_path, website_url, display_order, is_active, created_at
		FROM partners ORDER BY display_order
	`
	var partners []domain.Partner
	if err := r.db.SelectContext(ctx, &partners, query); err != nil {
		return nil, fmt.Errorf("select partners: %w", err)
	}
	return partners, nil
}

func (r *contentRepository) CreatePartner(ctx context.Context, p *domain.Partner) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO partners (id, name, logo_path, website_url, display_order, is_active, created_at)
		VALUES (:id, :name, :logo_path, :website_url, :display_order, :is_active, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

func (r *contentRepository) UpdatePartner(ctx context.Context, p *domain.Partner) error {
	query := `
		UPDATE partners SET
			name = :name,
			logo_path = :logo_path,
			website_url = :website_url,
			display_order = :display_order,
			is_active = :is_active
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *contentRepository) DeletePartner(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}

func (r *contentRepository) ListStats(ctx context.Context) ([]domain.Stat, error) {
	query := `
		SELECT id, label, value, icon_svg, display_order, is_active, created_at
		FROM stats ORDER BY display_order
	`
	var stats []domain.Stat
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("select stats: %w", err)
	}
	return stats, nil
}

func (r *contentRepository) GetStat(ctx context.Context, id string) (*domain.Stat, error) {
	query := `
		SELECT id, label, value, icon_svg, display_order, is_active, created_at
		FROM stats WHERE id = $1
	`
	var stat domain.Stat
	if err := r.db.GetContext(ctx, &stat, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select stat: %w", err)
	}
	return &stat, nil
}

func (r *contentRepository) CreateStat(ctx context.Context, s *domain.Stat) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
		INSERT INTO stats (id, label, value, icon_svg, display_order, is_active, created_at)
		VALUES (:id, :label, :value, :icon_svg, :display_order, :is_active, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("insert stat: %w", err)
	}
	return nil
}

func (r *contentRepository) UpdateStat(ctx context.Context, s *domain.Stat) error {
	query := `
		UPDATE stats SET
			label = :label,
			value = :value,
			icon_svg = :icon_svg,
			display_order = :display_order,
			is_active = :is_active
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		return fmt.Errorf("update stat: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *contentRepository) DeleteStat(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stats WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stat: %w", err)
	}
	return nil
}

func (r *contentRepository) CountActiveStats(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM stats WHERE is_active = TRUE`); err != nil {
		return 0, fmt.Errorf("count active stats: %w", err)
	}
	return count, nil
}

func (r *contentRepository) setActive(ctx context.Context, table, id string, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET is_active = $1 WHERE id = $2`, table)
	res, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("toggle %s: %w", table, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *contentRepository) SetServiceActive(ctx context.Context, id string, active bool) error {
	return r.setActive(ctx, "services", id, active)
}

func (r *contentRepository) SetPartnerActive(ctx context.Context, id string, active bool) error {
	return r.setActive(ctx, "partners", id, active)
}

func (r *contentRepository) SetStatActive(ctx context.Context, id string, active bool) error {
	return r.setActive(ctx, "stats", id, active)
}
