package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/assetpath"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/slug"
	"github.com/travel-admin/internal/usecase/dto"
)

type TourUseCase struct {
	tourRepo repository.TourRepository
	assetUC  *AssetUseCase
	logger   *zap.Logger
}

func NewTourUseCase(
	tourRepo repository.TourRepository,
	assetUC *AssetUseCase,
	logger *zap.Logger,
) *TourUseCase {
	return &TourUseCase{
		tourRepo: tourRepo,
		assetUC:  assetUC,
		logger:   logger,
	}
}

func (uc *TourUseCase) List(ctx context.Context) ([]domain.Tour, error) {
	tours, err := uc.tourRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tours", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tours, nil
}

func (uc *TourUseCase) GetDetails(ctx context.Context, id string) (*domain.TourDetails, error) {
	details, err := uc.tourRepo.GetDetails(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load tour", zap.String("tour_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if details == nil {
		return nil, errors.ErrTourNotFound
	}
	return details, nil
}

func (uc *TourUseCase) Create(ctx context.Context, req dto.TourRequest) (*domain.TourDetails, error) {
	weather, err := normalizeWeather(req.Weather)
	if err != nil {
		return nil, err
	}

	tour := tourFromRequest(req)
	tour.Slug = slug.Make(req.Title)

	if err := uc.tourRepo.Create(ctx, tour); err != nil {
		uc.logger.Error("Failed to create tour", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.saveCollections(ctx, tour.ID, req, weather); err != nil {
		return nil, err
	}

	uc.logger.Info("Tour created",
		zap.String("tour_id", tour.ID),
		zap.String("slug", tour.Slug))

	return uc.GetDetails(ctx, tour.ID)
}

func (uc *TourUseCase) Update(ctx context.Context, id string, req dto.TourRequest) (*domain.TourDetails, error) {
	existing, err := uc.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	weather, err := normalizeWeather(req.Weather)
	if err != nil {
		return nil, err
	}

	tour := tourFromRequest(req)
	tour.ID = id
	tour.Slug = slug.Make(req.Title)

	if err := uc.tourRepo.Update(ctx, tour); err != nil {
		uc.logger.Error("Failed to update tour", zap.String("tour_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.saveCollections(ctx, id, req, weather); err != nil {
		return nil, err
	}

	// Queue images that the update dropped.
	uc.queueDroppedImages(ctx, existing, req)

	return uc.GetDetails(ctx, id)
}

// Delete removes the stored files first and the records after. A failed
// storage delete does not block the record delete; the files are queued
// for the cleanup worker instead.
func (uc *TourUseCase) Delete(ctx context.Context, id string) error {
	details, err := uc.GetDetails(ctx, id)
	if err != nil {
		return err
	}

	uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, details.AssetPaths())

	if err := uc.tourRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete tour", zap.String("tour_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	uc.logger.Info("Tour deleted", zap.String("tour_id", id))
	return nil
}

// SetPopular enforces the popular tour cap before enabling the flag.
// A tour that is already popular stays within the cap, so re-flagging
// it is accepted.
func (uc *TourUseCase) SetPopular(ctx context.Context, id string, value bool) error {
	if value {
		tour, err := uc.tourRepo.GetByID(ctx, id)
		if err != nil {
			uc.logger.Error("Failed to load tour", zap.String("tour_id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
		if tour == nil {
			return errors.ErrTourNotFound
		}
		if !tour.PopularTour {
			count, err := uc.tourRepo.CountPopular(ctx)
			if err != nil {
				uc.logger.Error("Failed to count popular tours", zap.Error(err))
				return errors.ErrDatabaseError
			}
			if count >= domain.MaxPopularTours {
				return errors.ErrPopularTourLimit
			}
		}
	}
	return uc.setFlag(ctx, id, "popular_tour", value)
}

func (uc *TourUseCase) SetOpportunity(ctx context.Context, id string, value bool) error {
	return uc.setFlag(ctx, id, "opportunity_tour", value)
}

func (uc *TourUseCase) SetDestinationStatus(ctx context.Context, id string, value bool) error {
	return uc.setFlag(ctx, id, "destination_status", value)
}

func (uc *TourUseCase) setFlag(ctx context.Context, id, column string, value bool) error {
	if err := uc.tourRepo.SetFlag(ctx, id, column, value); err != nil {
		uc.logger.Error("Failed to set tour flag",
			zap.String("tour_id", id),
			zap.String("column", column),
			zap.Error(err))
		if notFound(err) {
			return errors.ErrTourNotFound
		}
		return errors.ErrDatabaseError
	}
	return nil
}

// ListOpportunities returns the tours flagged for the opportunity page.
func (uc *TourUseCase) ListOpportunities(ctx context.Context) ([]domain.TourSummary, error) {
	summaries, err := uc.tourRepo.ListSummaries(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tour summaries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	opportunities := make([]domain.TourSummary, 0)
	for _, s := range summaries {
		if s.OpportunityTour {
			opportunities = append(opportunities, s)
		}
	}
	return opportunities, nil
}

func (uc *TourUseCase) saveCollections(ctx context.Context, tourID string, req dto.TourRequest, weather []domain.TourWeatherData) error {
	images := make([]domain.TourImage, len(req.Images))
	for i, img := range req.Images {
		images[i] = domain.TourImage{
			StoragePath:  img.StoragePath,
			AltText:      img.AltText,
			ImageType:    img.ImageType,
			DisplayOrder: i + 1,
		}
	}

	highlights := make([]domain.TourHighlight, len(req.Highlights))
	for i, h := range req.Highlights {
		highlights[i] = domain.TourHighlight{Content: h.Content, DisplayOrder: i + 1}
	}

	inclusions := make([]domain.TourInclusion, len(req.Inclusions))
	for i, item := range req.Inclusions {
		inclusions[i] = domain.TourInclusion{Content: item.Content, DisplayOrder: i + 1}
	}

	tips := make([]domain.TourTip, len(req.Tips))
	for i, tip := range req.Tips {
		tips[i] = domain.TourTip{Content: tip.Content, IconName: tip.IconName}
	}

	programs := make([]domain.TourDailyProgram, len(req.DailyPrograms))
	for i, p := range req.DailyPrograms {
		programs[i] = domain.TourDailyProgram{
			DayRange:     p.DayRange,
			Title:        p.Title,
			Content:      p.Content,
			DisplayOrder: i + 1,
		}
	}

	prices := make([]domain.TourDatePrice, len(req.DatesPrices))
	for i, p := range req.DatesPrices {
		prices[i] = domain.TourDatePrice{
			TravelPeriod:  p.TravelPeriod,
			PriceCategory: p.PriceCategory,
			Airline:       p.Airline,
			Price:         p.Price,
			Currency:      p.Currency,
			PriceUSD:      p.PriceUSD,
			PriceEUR:      p.PriceEUR,
			PriceTRY:      p.PriceTRY,
			DisplayOrder:  i + 1,
		}
	}

	steps := []func() error{
		func() error { return uc.tourRepo.ReplaceImages(ctx, tourID, images) },
		func() error { return uc.tourRepo.ReplaceHighlights(ctx, tourID, highlights) },
		func() error { return uc.tourRepo.ReplaceInclusions(ctx, tourID, inclusions) },
		func() error { return uc.tourRepo.ReplaceTips(ctx, tourID, tips) },
		func() error { return uc.tourRepo.ReplaceDailyPrograms(ctx, tourID, programs) },
		func() error { return uc.tourRepo.ReplaceDatesPrices(ctx, tourID, prices) },
		func() error { return uc.tourRepo.ReplaceWeather(ctx, tourID, weather) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			uc.logger.Error("Failed to save tour collections",
				zap.String("tour_id", tourID),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}
	return nil
}

func (uc *TourUseCase) queueDroppedImages(ctx context.Context, existing *domain.TourDetails, req dto.TourRequest) {
	kept := map[string]bool{req.HeroImagePath: true}
	for _, img := range req.Images {
		kept[img.StoragePath] = true
	}

	var dropped []string
	for _, p := range existing.AssetPaths() {
		if !kept[p] {
			dropped = append(dropped, p)
		}
	}
	uc.assetUC.RemoveAll(ctx, assetpath.BucketSiteImages, dropped)
}

func tourFromRequest(req dto.TourRequest) *domain.Tour {
	return &domain.Tour{
		Title:             req.Title,
		Region:            req.Region,
		Duration:          req.Duration,
		BasePrice:         req.BasePrice,
		ShortDescription:  req.ShortDescription,
		LongDescription:   req.LongDescription,
		HeroImagePath:     req.HeroImagePath,
		TourTypeID:        req.TourTypeID,
		DestinationStatus: req.DestinationStatus,
	}
}

// normalizeWeather expands the request rows to the full 12-month set.
// Months missing from the request get a zero row; a month sent twice is
// rejected.
func normalizeWeather(rows []dto.TourWeatherRequest) ([]domain.TourWeatherData, error) {
	byMonth := make(map[string]dto.TourWeatherRequest, len(rows))
	for _, row := range rows {
		if _, dup := byMonth[row.Month]; dup {
			return nil, errors.ErrDuplicateWeatherMonth.WithDetails(map[string]interface{}{
				"month": row.Month,
			})
		}
		byMonth[row.Month] = row
	}

	weather := make([]domain.TourWeatherData, len(domain.Months))
	for i, month := range domain.Months {
		row := byMonth[month]
		weather[i] = domain.TourWeatherData{
			Month:        month,
			Temperature:  row.Temperature,
			Rainfall:     row.Rainfall,
			IsBestPeriod: row.IsBestPeriod,
		}
	}
	return weather, nil
}
