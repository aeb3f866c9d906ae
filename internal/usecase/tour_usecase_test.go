package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase"
	"github.com/travel-admin/internal/usecase/dto"
)

func newTourUseCase(tourRepo *MockTourRepository, storageRepo *MockStorageRepository, streamRepo *MockStreamRepository) *usecase.TourUseCase {
	logger := zap.NewNop()
	assetUC := usecase.NewAssetUseCase(storageRepo, streamRepo, logger)
	return usecase.NewTourUseCase(tourRepo, assetUC, logger)
}

func validTourRequest() dto.TourRequest {
	return dto.TourRequest{
		Title:      "Kapadokya Balon Turu",
		Region:     "Kapadokya",
		Duration:   "3 gün",
		BasePrice:  4500,
		TourTypeID: "type-1",
	}
}

func TestTourUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates slug and pads weather to twelve months", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		var savedWeather []domain.TourWeatherData
		tourRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tour")).
			Run(func(args mock.Arguments) {
				tour := args.Get(1).(*domain.Tour)
				tour.ID = "tour-1"
				assert.Equal(t, "kapadokya-balon-turu", tour.Slug)
			}).Return(nil)
		tourRepo.On("ReplaceImages", ctx, "tour-1", mock.Anything).Return(nil)
		tourRepo.On("ReplaceHighlights", ctx, "tour-1", mock.Anything).Return(nil)
		tourRepo.On("ReplaceInclusions", ctx, "tour-1", mock.Anything).Return(nil)
		tourRepo.On("ReplaceTips", ctx, "tour-1", mock.Anything).Return(nil)
		tourRepo.On("ReplaceDailyPrograms", ctx, "tour-1", mock.Anything).Return(nil)
		tourRepo.On("ReplaceDatesPrices", ctx, "tour-1", mock.Anything).Return(nil)
		tourRepo.On("ReplaceWeather", ctx, "tour-1", mock.AnythingOfType("[]domain.TourWeatherData")).
			Run(func(args mock.Arguments) {
				savedWeather = args.Get(2).([]domain.TourWeatherData)
			}).Return(nil)
		tourRepo.On("GetDetails", ctx, "tour-1").Return(&domain.TourDetails{
			Tour: domain.Tour{ID: "tour-1", Slug: "kapadokya-balon-turu"},
		}, nil)

		req := validTourRequest()
		req.Weather = []dto.TourWeatherRequest{
			{Month: "JUL", Temperature: 32, Rainfall: 5, IsBestPeriod: true},
		}

		details, err := uc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "tour-1", details.Tour.ID)
		require.Len(t, savedWeather, 12)
		assert.Equal(t, domain.Months, monthsOf(savedWeather))
		assert.Equal(t, 32.0, savedWeather[6].Temperature)
		assert.True(t, savedWeather[6].IsBestPeriod)
		assert.Equal(t, 0.0, savedWeather[0].Temperature)
		tourRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate weather month", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		req := validTourRequest()
		req.Weather = []dto.TourWeatherRequest{
			{Month: "JAN", Temperature: 5},
			{Month: "JAN", Temperature: 7},
		}

		details, err := uc.Create(ctx, req)

		assert.Nil(t, details)
		require.Error(t, err)
		appErr := err.(*errors.AppError)
		assert.Equal(t, "DUPLICATE_WEATHER_MONTH", appErr.Code)
		tourRepo.AssertNotCalled(t, "Create")
	})

	t.Run("renumbers collections contiguously from one", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		var savedHighlights []domain.TourHighlight
		tourRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tour")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Tour).ID = "tour-2"
			}).Return(nil)
		tourRepo.On("ReplaceImages", ctx, "tour-2", mock.Anything).Return(nil)
		tourRepo.On("ReplaceHighlights", ctx, "tour-2", mock.AnythingOfType("[]domain.TourHighlight")).
			Run(func(args mock.Arguments) {
				savedHighlights = args.Get(2).([]domain.TourHighlight)
			}).Return(nil)
		tourRepo.On("ReplaceInclusions", ctx, "tour-2", mock.Anything).Return(nil)
		tourRepo.On("ReplaceTips", ctx, "tour-2", mock.Anything).Return(nil)
		tourRepo.On("ReplaceDailyPrograms", ctx, "tour-2", mock.Anything).Return(nil)
		tourRepo.On("ReplaceDatesPrices", ctx, "tour-2", mock.Anything).Return(nil)
		tourRepo.On("ReplaceWeather", ctx, "tour-2", mock.Anything).Return(nil)
		tourRepo.On("GetDetails", ctx, "tour-2").Return(&domain.TourDetails{
			Tour: domain.Tour{ID: "tour-2"},
		}, nil)

		req := validTourRequest()
		req.Highlights = []dto.TourItemRequest{
			{Content: "Balon uçuşu"},
			{Content: "Vadide yürüyüş"},
			{Content: "Yerel kahvaltı"},
		}

		_, err := uc.Create(ctx, req)

		require.NoError(t, err)
		require.Len(t, savedHighlights, 3)
		for i, h := range savedHighlights {
			assert.Equal(t, i+1, h.DisplayOrder)
		}
	})
}

func TestTourUseCase_SetPopular(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects seventh popular tour", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		tourRepo.On("GetByID", ctx, "tour-1").Return(&domain.Tour{ID: "tour-1"}, nil)
		tourRepo.On("CountPopular", ctx).Return(6, nil)

		err := uc.SetPopular(ctx, "tour-1", true)

		require.Error(t, err)
		assert.Equal(t, errors.ErrPopularTourLimit, err)
		tourRepo.AssertNotCalled(t, "SetFlag")
	})

	t.Run("allows enabling under the cap", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		tourRepo.On("GetByID", ctx, "tour-1").Return(&domain.Tour{ID: "tour-1"}, nil)
		tourRepo.On("CountPopular", ctx).Return(5, nil)
		tourRepo.On("SetFlag", ctx, "tour-1", "popular_tour", true).Return(nil)

		err := uc.SetPopular(ctx, "tour-1", true)

		require.NoError(t, err)
		tourRepo.AssertExpectations(t)
	})

	t.Run("re-flagging a popular tour at the cap succeeds", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		tourRepo.On("GetByID", ctx, "tour-1").
			Return(&domain.Tour{ID: "tour-1", PopularTour: true}, nil)
		tourRepo.On("SetFlag", ctx, "tour-1", "popular_tour", true).Return(nil)

		err := uc.SetPopular(ctx, "tour-1", true)

		require.NoError(t, err)
		tourRepo.AssertNotCalled(t, "CountPopular")
		tourRepo.AssertExpectations(t)
	})

	t.Run("disabling skips the count", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		tourRepo.On("SetFlag", ctx, "tour-1", "popular_tour", false).Return(nil)

		err := uc.SetPopular(ctx, "tour-1", false)

		require.NoError(t, err)
		tourRepo.AssertNotCalled(t, "CountPopular")
	})

	t.Run("missing tour", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		tourRepo.On("GetByID", ctx, "gone").Return(nil, nil)

		err := uc.SetPopular(ctx, "gone", true)

		assert.Equal(t, errors.ErrTourNotFound, err)
		tourRepo.AssertNotCalled(t, "SetFlag")
	})
}

func TestTourUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("storage failure does not block the record delete", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		storageRepo := &MockStorageRepository{}
		streamRepo := &MockStreamRepository{}
		uc := newTourUseCase(tourRepo, storageRepo, streamRepo)

		details := &domain.TourDetails{
			Tour: domain.Tour{ID: "tour-1", HeroImagePath: "tour-images/hero/a.jpg"},
			Images: []domain.TourImage{
				{StoragePath: "tour-images/gallery/b.jpg"},
			},
		}
		tourRepo.On("GetDetails", ctx, "tour-1").Return(details, nil)
		storageRepo.On("Remove", ctx, "site-images", []string{"tour-images/hero/a.jpg", "tour-images/gallery/b.jpg"}).
			Return(assert.AnError)
		streamRepo.On("PublishToStream", ctx, domain.StreamAssetCleanup, mock.Anything).Return(nil).Twice()
		tourRepo.On("Delete", ctx, "tour-1").Return(nil)

		err := uc.Delete(ctx, "tour-1")

		require.NoError(t, err)
		tourRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("missing tour", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

		tourRepo.On("GetDetails", ctx, "gone").Return(nil, nil)

		err := uc.Delete(ctx, "gone")

		assert.Equal(t, errors.ErrTourNotFound, err)
	})
}

func TestTourUseCase_ListOpportunities(t *testing.T) {
	ctx := context.Background()
	tourRepo := &MockTourRepository{}
	uc := newTourUseCase(tourRepo, &MockStorageRepository{}, &MockStreamRepository{})

	tourRepo.On("ListSummaries", ctx).Return([]domain.TourSummary{
		{ID: "a", OpportunityTour: true},
		{ID: "b", OpportunityTour: false},
		{ID: "c", OpportunityTour: true},
	}, nil)

	opportunities, err := uc.ListOpportunities(ctx)

	require.NoError(t, err)
	require.Len(t, opportunities, 2)
	assert.Equal(t, "a", opportunities[0].ID)
	assert.Equal(t, "c", opportunities[1].ID)
}

func monthsOf(rows []domain.TourWeatherData) []string {
	months := make([]string, len(rows))
	for i, row := range rows {
		months[i] = row.Month
	}
	return months
}
