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

type tourTypeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTourTypeRepository(db *DB, logger *zap.Logger) repository.TourTypeRepository {
	return &tourTypeRepository{
		db:     db,
		logger: logger,
	}
}

const tourTypeColumns = `
	id, type, type_icon_svg, header_title, hero_title, hero_subtitle,
	hero_image_path, section_title, section_text, right_image_1,
	right_image_2, created_at`

func (r *tourTypeRepository) List(ctx context.Context) ([]domain.TourTypeSettings, error) {
	query := `SELECT ` + tourTypeColumns + ` FROM tour_type_settings ORDER BY created_at`

	var types []domain.TourTypeSettings
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("select tour types: %w", err)
	}
	return types, nil
}

func (r *tourTypeRepository) GetByID(ctx context.Context, id string) (*domain.TourTypeSettings, error) {
	query := `SELECT ` + tourTypeColumns + ` FROM tour_type_settings WHERE id = $1`

	var t domain.TourTypeSettings
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select tour type: %w", err)
	}
	return &t, nil
}

func (r *tourTypeRepository) Create(ctx context.Context, t *domain.TourTypeSettings) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tour_type_settings (
			id, type, type_icon_svg, header_title, hero_title, hero_subtitle,
			hero_image_path, section_title, section_text, right_image_1,
			right_image_2, created_at
		) VALUES (
			:id, :type, :type_icon_svg, :header_title, :hero_title, :hero_subtitle,
			:hero_image_path, :section_title, :section_text, :right_image_1,
			:right_image_2, NOW()
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("insert tour type: %w", err)
	}
	return nil
}

func (r *tourTypeRepository) Update(ctx context.Context, t *domain.TourTypeSettings) error {
	query := `
		UPDATE tour_type_settings SET
			type = :type,
			type_icon_svg = :type_icon_svg,
			header_title = :header_title,
			hero_title = :hero_title,
			hero_subtitle = :hero_subtitle,
			hero_image_path = :hero_image_path,
			section_title = :section_title,
			section_text = :section_text,
			right_image_1 = :right_image_1,
			right_image_2 = :right_image_2
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return fmt.Errorf("update tour type: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *tourTypeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tour_type_settings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tour type: %w", err)
	}
	return nil
}
