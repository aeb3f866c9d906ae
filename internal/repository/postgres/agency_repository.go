package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type agencyRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewAgencyRepository(db *DB, logger *zap.Logger) repository.AgencyRepository {
	return &agencyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *agencyRepository) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	query := `
		SELECT id, acenta_ismi, isim, soyisim, email, telefon, mobil_telefon,
			sehir, ulke, adres, created_at
		FROM acentalar ORDER BY created_at DESC
	`
	var agencies []domain.Agency
	if err := r.db.SelectContext(ctx, &agencies, query); err != nil {
		return nil, fmt.Errorf("select agencies: %w", err)
	}
	return agencies, nil
}

func (r *agencyRepository) CreateAgency(ctx context.Context, a *domain.Agency) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `
		INSERT INTO acentalar (id, acenta_ismi, isim, soyisim, email, telefon,
			mobil_telefon, sehir, ulke, adres, created_at)
		VALUES (:id, :acenta_ismi, :isim, :soyisim, :email, :telefon,
			:mobil_telefon, :sehir, :ulke, :adres, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("insert agency: %w", err)
	}
	return nil
}

func (r *agencyRepository) UpdateAgency(ctx context.Context, a *domain.Agency) error {
	query := `
		UPDATE acentalar SET
			acenta_ismi = :acenta_ismi,
			isim = :isim,
			soyisim = :soyisim,
			email = :email,
			telefon = :telefon,
			mobil_telefon = :mobil_telefon,
			sehir = :sehir,
			ulke = :ulke,
			adres = :adres
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return fmt.Errorf("update agency: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *agencyRepository) DeleteAgency(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM acentalar WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete agency: %w", err)
	}
	return nil
}

func (r *agencyRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT id, email, full_name, role, created_at FROM profiles ORDER BY created_at`
	var profiles []domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	return profiles, nil
}

func (r *agencyRepository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO profiles (id, email, full_name, role, created_at)
		VALUES (:id, :email, :full_name, :role, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *agencyRepository) DeleteProfile(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
