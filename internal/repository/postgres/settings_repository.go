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

type settingsRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewSettingsRepository(db *DB, logger *zap.Logger) repository.SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// getSingleton loads the one row of a settings table; nil when the table
// has never been saved.
func (r *settingsRepository) getSingleton(ctx context.Context, dest interface{}, query string) error {
	if err := r.db.GetContext(ctx, dest, query, domain.SingletonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("select settings row: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetHero(ctx context.Context) (*domain.HeroSettings, error) {
	var s domain.HeroSettings
	err := r.getSingleton(ctx, &s, `SELECT id, title, subtitle, image_path, updated_at FROM hero_settings WHERE id = $1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpsertHero(ctx context.Context, s *domain.HeroSettings) error {
	s.ID = domain.SingletonID
	query := `
		INSERT INTO hero_settings (id, title, subtitle, image_path, updated_at)
		VALUES (:id, :title, :subtitle, :image_path, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			image_path = EXCLUDED.image_path,
			updated_at = NOW()
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("upsert hero settings: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetLogo(ctx context.Context) (*domain.LogoSettings, error) {
	var s domain.LogoSettings
	err := r.getSingleton(ctx, &s, `SELECT id, logo_path, updated_at FROM logo_settings WHERE id = $1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpsertLogo(ctx context.Context, s *domain.LogoSettings) error {
	s.ID = domain.SingletonID
	query := `
		INSERT INTO logo_settings (id, logo_path, updated_at)
		VALUES (:id, :logo_path, NOW())
		ON CONFLICT (id) DO UPDATE SET
			logo_path = EXCLUDED.logo_path,
			updated_at = NOW()
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("upsert logo settings: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetMap(ctx context.Context) (*domain.MapSettings, error) {
	var s domain.MapSettings
	err := r.getSingleton(ctx, &s, `SELECT id, title, map_image_path, updated_at FROM map_settings WHERE id = $1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpsertMap(ctx context.Context, s *domain.MapSettings) error {
	s.ID = domain.SingletonID
	query := `
		INSERT INTO map_settings (id, title, map_image_path, updated_at)
		VALUES (:id, :title, :map_image_path, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			map_image_path = EXCLUDED.map_image_path,
			updated_at = NOW()
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("upsert map settings: %w", err)
	}
	return nil
}

func (r *settingsRepository) ListMapLocations(ctx context.Context) ([]domain.MapLocation, error) {
	var locations []domain.MapLocation
	query := `SELECT id, name, x_percent, y_percent FROM map_locations ORDER BY name`
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("select map locations: %w", err)
	}
	return locations, nil
}

func (r *settingsRepository) CreateMapLocation(ctx context.Context, loc *domain.MapLocation) error {
	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	query := `
		INSERT INTO map_locations (id, name, x_percent, y_percent)
		VALUES (:id, :name, :x_percent, :y_percent)
	`
	if _, err := r.db.NamedExecContext(ctx, query, loc); err != nil {
		return fmt.Errorf("insert map location: %w", err)
	}
	return nil
}

func (r *settingsRepository) UpdateMapLocation(ctx context.Context, loc *domain.MapLocation) error {
	query := `
		UPDATE map_locations SET name = :name, x_percent = :x_percent, y_percent = :y_percent
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, loc)
	if err != nil {
		return fmt.Errorf("update map location: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *settingsRepository) DeleteMapLocation(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM map_locations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete map location: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetFeatured(ctx context.Context) (*domain.FeaturedSectionSettings, error) {
	var s domain.FeaturedSectionSettings
	err := r.getSingleton(ctx, &s, `SELECT id, title, subtitle, display_order, is_active, updated_at FROM featured_section_settings WHERE id = $1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpsertFeatured(ctx context.Context, s *domain.FeaturedSectionSettings) error {
	s.ID = domain.SingletonID
	query := `
		INSERT INTO featured_section_settings (id, title, subtitle, display_order, is_active, updated_at)
		VALUES (:id, :title, :subtitle, :display_order, :is_active, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			display_order = EXCLUDED.display_order,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("upsert featured section settings: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetOpportunity(ctx context.Context) (*domain.OpportunitySettings, error) {
	var s domain.OpportunitySettings
	err := r.getSingleton(ctx, &s, `
		SELECT id, hero_title, hero_subtitle, hero_image_path, left_title, left_text,
			right_image_1, right_image_2, bottom_title, bottom_text, bottom_image, updated_at
		FROM opportunity_settings WHERE id = $1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpsertOpportunity(ctx context.Context, s *domain.OpportunitySettings) error {
	s.ID = domain.SingletonID
	query := `
		INSERT INTO opportunity_settings (
			id, hero_title, hero_subtitle, hero_image_path, left_title, left_text,
			right_image_1, right_image_2, bottom_title, bottom_text, bottom_image, updated_at
		) VALUES (
			:id, :hero_title, :hero_subtitle, :hero_image_path, :left_title, :left_text,
			:right_image_1, :right_image_2, :bottom_title, :bottom_text, :bottom_image, NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			hero_image_path = EXCLUDED.hero_image_path,
			left_title = EXCLUDED.left_title,
			left_text = EXCLUDED.left_text,
			right_image_1 = EXCLUDED.right_image_1,
			right_image_2 = EXCLUDED.right_image_2,
			bottom_title = EXCLUDED.bottom_title,
			bottom_text = EXCLUDED.bottom_text,
			bottom_image = EXCLUDED.bottom_image,
			updated_at = NOW()
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("upsert opportunity settings: %w", err)
	}
	return nil
}
