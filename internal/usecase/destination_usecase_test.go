package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/usecase"
)

func TestDestinationUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("groups by region in first-seen order", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		regionRepo := &MockRegionImageRepository{}
		uc := usecase.NewDestinationUseCase(tourRepo, regionRepo, zap.NewNop())

		tourRepo.On("ListSummaries", ctx).Return([]domain.TourSummary{
			{ID: "1", Region: "Kapadokya", DestinationStatus: true},
			{ID: "2", Region: "Ege", DestinationStatus: true},
			{ID: "3", Region: "Kapadokya", DestinationStatus: true},
			{ID: "4", Region: "Karadeniz", DestinationStatus: false},
		}, nil)
		regionRepo.On("GetByRegions", ctx, []string{"Kapadokya", "Ege"}).Return([]domain.RegionImage{
			{Region: "Ege", ImagePath: "region-images/ege.jpg"},
		}, nil)

		destinations, err := uc.List(ctx)

		require.NoError(t, err)
		require.Len(t, destinations, 2)

		assert.Equal(t, "Kapadokya", destinations[0].Region)
		assert.Len(t, destinations[0].Tours, 2)
		assert.Empty(t, destinations[0].ImagePath)

		assert.Equal(t, "Ege", destinations[1].Region)
		assert.Len(t, destinations[1].Tours, 1)
		assert.Equal(t, "region-images/ege.jpg", destinations[1].ImagePath)
	})

	t.Run("no destination tours", func(t *testing.T) {
		tourRepo := &MockTourRepository{}
		regionRepo := &MockRegionImageRepository{}
		uc := usecase.NewDestinationUseCase(tourRepo, regionRepo, zap.NewNop())

		tourRepo.On("ListSummaries", ctx).Return([]domain.TourSummary{
			{ID: "1", Region: "Kapadokya", DestinationStatus: false},
		}, nil)

		destinations, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, destinations)
		regionRepo.AssertNotCalled(t, "GetByRegions")
	})
}
