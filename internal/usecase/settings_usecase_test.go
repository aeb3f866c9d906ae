package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/usecase"
	"github.com/travel-admin/internal/usecase/dto"
)

func newSettingsUseCase(settingsRepo *MockSettingsRepository, storageRepo *MockStorageRepository, streamRepo *MockStreamRepository) *usecase.SettingsUseCase {
	logger := zap.NewNop()
	assetUC := usecase.NewAssetUseCase(storageRepo, streamRepo, logger)
	return usecase.NewSettingsUseCase(settingsRepo, assetUC, logger)
}

func TestSettingsUseCase_SaveHero(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and removes the replaced image", func(t *testing.T) {
		settingsRepo := &MockSettingsRepository{}
		storageRepo := &MockStorageRepository{}
		streamRepo := &MockStreamRepository{}
		uc := newSettingsUseCase(settingsRepo, storageRepo, streamRepo)

		settingsRepo.On("GetHero", ctx).Return(&domain.HeroSettings{
			ID:        domain.SingletonID,
			ImagePath: "hero/old-banner.jpg",
		}, nil)
		settingsRepo.On("UpsertHero", ctx, mock.AnythingOfType("*domain.HeroSettings")).Return(nil)
		storageRepo.On("Remove", ctx, "site-images", []string{"hero/old-banner.jpg"}).Return(nil)

		hero, err := uc.SaveHero(ctx, dto.HeroSettingsRequest{
			Title:     "Keşfet",
			Subtitle:  "Türkiye'nin en güzel rotaları",
			ImagePath: "hero/new-banner.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, "hero/new-banner.jpg", hero.ImagePath)
		settingsRepo.AssertExpectations(t)
		storageRepo.AssertExpectations(t)
	})

	t.Run("first save has nothing to clean up", func(t *testing.T) {
		settingsRepo := &MockSettingsRepository{}
		storageRepo := &MockStorageRepository{}
		uc := newSettingsUseCase(settingsRepo, storageRepo, &MockStreamRepository{})

		settingsRepo.On("GetHero", ctx).Return(nil, nil)
		settingsRepo.On("UpsertHero", ctx, mock.AnythingOfType("*domain.HeroSettings")).Return(nil)

		_, err := uc.SaveHero(ctx, dto.HeroSettingsRequest{Title: "Keşfet", ImagePath: "hero/banner.jpg"})

		require.NoError(t, err)
		storageRepo.AssertNotCalled(t, "Remove")
	})

	t.Run("unchanged image path is not removed", func(t *testing.T) {
		settingsRepo := &MockSettingsRepository{}
		storageRepo := &MockStorageRepository{}
		uc := newSettingsUseCase(settingsRepo, storageRepo, &MockStreamRepository{})

		settingsRepo.On("GetHero", ctx).Return(&domain.HeroSettings{ImagePath: "hero/banner.jpg"}, nil)
		settingsRepo.On("UpsertHero", ctx, mock.AnythingOfType("*domain.HeroSettings")).Return(nil)

		_, err := uc.SaveHero(ctx, dto.HeroSettingsRequest{Title: "Keşfet", ImagePath: "hero/banner.jpg"})

		require.NoError(t, err)
		storageRepo.AssertNotCalled(t, "Remove")
	})
}

func TestSettingsUseCase_SaveLogo(t *testing.T) {
	ctx := context.Background()
	settingsRepo := &MockSettingsRepository{}
	storageRepo := &MockStorageRepository{}
	uc := newSettingsUseCase(settingsRepo, storageRepo, &MockStreamRepository{})

	settingsRepo.On("GetLogo", ctx).Return(&domain.LogoSettings{LogoPath: "logo/old.svg"}, nil)
	settingsRepo.On("UpsertLogo", ctx, mock.AnythingOfType("*domain.LogoSettings")).Return(nil)
	storageRepo.On("Remove", ctx, "site-images", []string{"logo/old.svg"}).Return(nil)

	logo, err := uc.SaveLogo(ctx, "logo/new.svg")

	require.NoError(t, err)
	assert.Equal(t, "logo/new.svg", logo.LogoPath)
	storageRepo.AssertExpectations(t)
}

func TestSettingsUseCase_SaveOpportunity(t *testing.T) {
	ctx := context.Background()
	settingsRepo := &MockSettingsRepository{}
	storageRepo := &MockStorageRepository{}
	uc := newSettingsUseCase(settingsRepo, storageRepo, &MockStreamRepository{})

	settingsRepo.On("GetOpportunity", ctx).Return(&domain.OpportunitySettings{
		HeroImagePath: "opportunity/hero-old.jpg",
		RightImage1:   "opportunity/right-1.jpg",
	}, nil)
	settingsRepo.On("UpsertOpportunity", ctx, mock.AnythingOfType("*domain.OpportunitySettings")).Return(nil)
	// Only the hero image changed; right_image_1 is kept.
	storageRepo.On("Remove", ctx, "site-images", []string{"opportunity/hero-old.jpg"}).Return(nil)

	_, err := uc.SaveOpportunity(ctx, dto.OpportunitySettingsRequest{
		HeroTitle:     "Fırsat Turları",
		HeroImagePath: "opportunity/hero-new.jpg",
		RightImage1:   "opportunity/right-1.jpg",
	})

	require.NoError(t, err)
	storageRepo.AssertExpectations(t)
}
