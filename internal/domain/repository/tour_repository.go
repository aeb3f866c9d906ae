package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

// TourRepository covers the tours table and its dependent collections.
type TourRepository interface {
	// List returns all tours joined with their tour type name.
	List(ctx context.Context) ([]domain.Tour, error)

	// ListSummaries returns the reduced shape used by grouped views.
	ListSummaries(ctx context.Context) ([]domain.TourSummary, error)

	// GetByID loads the bare tour record, nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Tour, error)

	// GetDetails loads a tour with all dependent collections.
	GetDetails(ctx context.Context, id string) (*domain.TourDetails, error)

	Create(ctx context.Context, tour *domain.Tour) error
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id string) error

	// SetFlag updates one of the boolean status columns
	// (popular_tour, opportunity_tour, destination_status).
	SetFlag(ctx context.Context, id, column string, value bool) error

	// CountPopular returns how many tours currently carry the popular flag.
	CountPopular(ctx context.Context) (int, error)

	// Replace* swap a dependent collection wholesale for one tour.
	ReplaceImages(ctx context.Context, tourID string, items []domain.TourImage) error
	ReplaceHighlights(ctx context.Context, tourID string, items []domain.TourHighlight) error
	ReplaceInclusions(ctx context.Context, tourID string, items []domain.TourInclusion) error
	ReplaceTips(ctx context.Context, tourID string, items []domain.TourTip) error
	ReplaceDailyPrograms(ctx context.Context, tourID string, items []domain.TourDailyProgram) error
	ReplaceDatesPrices(ctx context.Context, tourID string, items []domain.TourDatePrice) error
	ReplaceWeather(ctx context.Context, tourID string, items []domain.TourWeatherData) error
}
