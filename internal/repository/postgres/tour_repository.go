package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type tourRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTourRepository(db *DB, logger *zap.Logger) repository.TourRepository {
	return &tourRepository{
		db:     db,
		logger: logger,
	}
}

const tourColumns = `
	t.id, t.slug, t.title, t.region, t.duration, t.base_price,
	t.short_description, t.long_description, t.hero_image_path,
	t.tour_type_id, t.popular_tour, t.opportunity_tour,
	t.destination_status, t.created_at, t.updated_at`

func (r *tourRepository) List(ctx context.Context) ([]domain.Tour, error) {
	query := `
		SELECT ` + tourColumns + `,
			tt.header_title AS tour_type_name
		FROM tours t
		LEFT JOIN tour_type_settings tt ON tt.id = t.tour_type_id
		ORDER BY t.created_at DESC
	`

	var tours []domain.Tour
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		return nil, fmt.Errorf("select tours: %w", err)
	}
	return tours, nil
}

func (r *tourRepository) ListSummaries(ctx context.Context) ([]domain.TourSummary, error) {
	query := `
		SELECT id, title, slug, region, duration, base_price,
			short_description, hero_image_path,
			popular_tour, opportunity_tour, destination_status
		FROM tours
		ORDER BY region ASC, created_at ASC
	`

	var tours []domain.TourSummary
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		return nil, fmt.Errorf("select tour summaries: %w", err)
	}
	return tours, nil
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours t WHERE t.id = $1`

	var tour domain.Tour
	if err := r.db.GetContext(ctx, &tour, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select tour: %w", err)
	}
	return &tour, nil
}

func (r *tourRepository) GetDetails(ctx context.Context, id string) (*domain.TourDetails, error) {
	details := &domain.TourDetails{}

	query := `SELECT ` + tourColumns + ` FROM tours t WHERE t.id = $1`
	if err := r.db.GetContext(ctx, &details.Tour, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select tour: %w", err)
	}

	collections := []struct {
		dest  interface{}
		query string
	}{
		{&details.Images, `SELECT id, tour_id, storage_path, alt_text, image_type, display_order FROM tour_images WHERE tour_id = $1 ORDER BY display_order`},
		{&details.Highlights, `SELECT id, tour_id, content, display_order FROM tour_highlights WHERE tour_id = $1 ORDER BY display_order`},
		{&details.Inclusions, `SELECT id, tour_id, content, display_order FROM tour_inclusions WHERE tour_id = $1 ORDER BY display_order`},
		{&details.Tips, `SELECT id, tour_id, content, icon_name FROM tour_tips WHERE tour_id = $1`},
		{&details.DailyPrograms, `SELECT id, tour_id, day_range, title, content, display_order FROM tour_daily_programs WHERE tour_id = $1 ORDER BY display_order`},
		{&details.DatesPrices, `SELECT id, tour_id, travel_period, price_category, airline, price, currency, price_usd, price_eur, price_try, display_order FROM tour_dates_prices WHERE tour_id = $1 ORDER BY display_order`},
		{&details.Weather, `SELECT id, tour_id, month, temperature, rainfall, is_best_period FROM tour_weather_data WHERE tour_id = $1`},
	}

	for _, c := range collections {
		if err := r.db.SelectContext(ctx, c.dest, c.query, id); err != nil {
			return nil, fmt.Errorf("select tour collection: %w", err)
		}
	}

	return details, nil
}

func (r *tourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	if tour.ID == "" {
		tour.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tours (
			id, slug, title, region, duration, base_price,
			short_description, long_description, hero_image_path,
			tour_type_id, popular_tour, opportunity_tour,
			destination_status, created_at, updated_at
		) VALUES (
			:id, :slug, :title, :region, :duration, :base_price,
			:short_description, :long_description, :hero_image_path,
			:tour_type_id, :popular_tour, :opportunity_tour,
			:destination_status, NOW(), NOW()
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, tour); err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}
	return nil
}

func (r *tourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	query := `
		UPDATE tours SET
			slug = :slug,
			title = :title,
			region = :region,
			duration = :duration,
			base_price = :base_price,
			short_description = :short_description,
			long_description = :long_description,
			hero_image_path = :hero_image_path,
			tour_type_id = :tour_type_id,
			destination_status = :destination_status,
			updated_at = NOW()
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, tour)
	if err != nil {
		return fmt.Errorf("update tour: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id string) error {
	// Dependent collections are removed first; no FK cascade is assumed.
	tables := []string{
		"tour_images", "tour_highlights", "tour_inclusions", "tour_tips",
		"tour_daily_programs", "tour_dates_prices", "tour_weather_data",
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tour delete: %w", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE tour_id = $1`, table), id); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tour delete: %w", err)
	}
	return nil
}

// Whitelisted flag columns; SetFlag refuses anything else to keep the
// query injection-proof.
var tourFlagColumns = map[string]bool{
	"popular_tour":       true,
	"opportunity_tour":   true,
	"destination_status": true,
}

func (r *tourRepository) SetFlag(ctx context.Context, id, column string, value bool) error {
	if !tourFlagColumns[column] {
		return fmt.Errorf("unknown tour flag column: %s", column)
	}

	query := fmt.Sprintf(`UPDATE tours SET %s = $1, updated_at = NOW() WHERE id = $2`, column)
	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update tour flag: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *tourRepository) CountPopular(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tours WHERE popular_tour = TRUE`); err != nil {
		return 0, fmt.Errorf("count popular tours: %w", err)
	}
	return count, nil
}

// replaceCollection swaps all child rows of a tour inside one transaction.
func (r *tourRepository) replaceCollection(ctx context.Context, table, tourID, insertQuery string, rows []interface{}) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace %s: %w", table, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE tour_id = $1`, table), tourID); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	for _, row := range rows {
		if _, err := sqlx.NamedExecContext(ctx, tx, insertQuery, row); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s: %w", table, err)
	}
	return nil
}

func (r *tourRepository) ReplaceImages(ctx context.Context, tourID string, items []domain.TourImage) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_images", tourID, `
		INSERT INTO tour_images (id, tour_id, storage_path, alt_text, image_type, display_order)
		VALUES (:id, :tour_id, :storage_path, :alt_text, :image_type, :display_order)`, rows)
}

func (r *tourRepository) ReplaceHighlights(ctx context.Context, tourID string, items []domain.TourHighlight) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_highlights", tourID, `
		INSERT INTO tour_highlights (id, tour_id, content, display_order)
		VALUES (:id, :tour_id, :content, :display_order)`, rows)
}

func (r *tourRepository) ReplaceInclusions(ctx context.Context, tourID string, items []domain.TourInclusion) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_inclusions", tourID, `
		INSERT INTO tour_inclusions (id, tour_id, content, display_order)
		VALUES (:id, :tour_id, :content, :display_order)`, rows)
}

func (r *tourRepository) ReplaceTips(ctx context.Context, tourID string, items []domain.TourTip) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_tips", tourID, `
		INSERT INTO tour_tips (id, tour_id, content, icon_name)
		VALUES (:id, :tour_id, :content, :icon_name)`, rows)
}

func (r *tourRepository) ReplaceDailyPrograms(ctx context.Context, tourID string, items []domain.TourDailyProgram) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_daily_programs", tourID, `
		INSERT INTO tour_daily_programs (id, tour_id, day_range, title, content, display_order)
		VALUES (:id, :tour_id, :day_range, :title, :content, :display_order)`, rows)
}

func (r *tourRepository) ReplaceDatesPrices(ctx context.Context, tourID string, items []domain.TourDatePrice) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_dates_prices", tourID, `
		INSERT INTO tour_dates_prices (id, tour_id, travel_period, price_category, airline, price, currency, price_usd, price_eur, price_try, display_order)
		VALUES (:id, :tour_id, :travel_period, :price_category, :airline, :price, :currency, :price_usd, :price_eur, :price_try, :display_order)`, rows)
}

func (r *tourRepository) ReplaceWeather(ctx context.Context, tourID string, items []domain.TourWeatherData) error {
	rows := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].TourID = tourID
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		rows = append(rows, items[i])
	}
	return r.replaceCollection(ctx, "tour_weather_data", tourID, `
		INSERT INTO tour_weather_data (id, tour_id, month, temperature, rainfall, is_best_period)
		VALUES (:id, :tour_id, :month, :temperature, :rainfall, :is_best_period)`, rows)
}
