package usecase_test

import (
	"context"
	"database/sql"
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

func newContentUseCase(contentRepo *MockContentRepository) *usecase.ContentUseCase {
	logger := zap.NewNop()
	assetUC := usecase.NewAssetUseCase(&MockStorageRepository{}, &MockStreamRepository{}, logger)
	return usecase.NewContentUseCase(contentRepo, assetUC, logger)
}

func TestContentUseCase_StatCap(t *testing.T) {
	ctx := context.Background()

	t.Run("creating a fourth active stat is rejected", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("CountActiveStats", ctx).Return(3, nil)

		stat, err := uc.CreateStat(ctx, dto.StatRequest{
			Label: "Mutlu Müşteri", Value: "10.000+", IsActive: true,
		})

		assert.Nil(t, stat)
		assert.Equal(t, errors.ErrActiveStatLimit, err)
		contentRepo.AssertNotCalled(t, "CreateStat")
	})

	t.Run("inactive stat skips the cap check", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("CreateStat", ctx, mock.AnythingOfType("*domain.Stat")).Return(nil)

		stat, err := uc.CreateStat(ctx, dto.StatRequest{
			Label: "Yıllık Deneyim", Value: "25", IsActive: false,
		})

		require.NoError(t, err)
		assert.Equal(t, "Yıllık Deneyim", stat.Label)
		contentRepo.AssertNotCalled(t, "CountActiveStats")
	})

	t.Run("activating a fourth stat via toggle is rejected", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("GetStat", ctx, "stat-4").Return(&domain.Stat{ID: "stat-4", IsActive: false}, nil)
		contentRepo.On("CountActiveStats", ctx).Return(3, nil)

		err := uc.SetStatActive(ctx, "stat-4", true)

		assert.Equal(t, errors.ErrActiveStatLimit, err)
		contentRepo.AssertNotCalled(t, "SetStatActive")
	})

	t.Run("re-activating an already active stat does not count against the cap", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("GetStat", ctx, "stat-1").Return(&domain.Stat{ID: "stat-1", IsActive: true}, nil)
		contentRepo.On("SetStatActive", ctx, "stat-1", true).Return(nil)

		err := uc.SetStatActive(ctx, "stat-1", true)

		require.NoError(t, err)
		contentRepo.AssertNotCalled(t, "CountActiveStats")
	})

	t.Run("deactivating skips all checks", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("SetStatActive", ctx, "stat-1", false).Return(nil)

		err := uc.SetStatActive(ctx, "stat-1", false)

		require.NoError(t, err)
		contentRepo.AssertNotCalled(t, "GetStat")
	})
}

func TestContentUseCase_UpdateErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing service maps to not found", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("UpdateService", ctx, mock.AnythingOfType("*domain.Service")).
			Return(sql.ErrNoRows)

		_, err := uc.UpdateService(ctx, "gone", dto.ServiceRequest{Title: "Transfer"})

		assert.Equal(t, errors.ErrRecordNotFound, err)
	})

	t.Run("database failure is not reported as not found", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("UpdateService", ctx, mock.AnythingOfType("*domain.Service")).
			Return(assert.AnError)

		_, err := uc.UpdateService(ctx, "svc-1", dto.ServiceRequest{Title: "Transfer"})

		assert.Equal(t, errors.ErrDatabaseError, err)
	})

	t.Run("toggle distinguishes missing from failing", func(t *testing.T) {
		contentRepo := &MockContentRepository{}
		uc := newContentUseCase(contentRepo)

		contentRepo.On("SetPartnerActive", ctx, "gone", true).Return(sql.ErrNoRows)
		contentRepo.On("SetPartnerActive", ctx, "p-1", false).Return(assert.AnError)

		assert.Equal(t, errors.ErrRecordNotFound, uc.SetPartnerActive(ctx, "gone", true))
		assert.Equal(t, errors.ErrDatabaseError, uc.SetPartnerActive(ctx, "p-1", false))
	})
}

func TestContentUseCase_UnsafeIcon(t *testing.T) {
	ctx := context.Background()
	contentRepo := &MockContentRepository{}
	uc := newContentUseCase(contentRepo)

	_, err := uc.CreateService(ctx, dto.ServiceRequest{
		Title:   "Transfer",
		IconSVG: `<svg onload="alert(1)"><path d="M0 0"/></svg>`,
	})

	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, "UNSAFE_SVG", appErr.Code)
	contentRepo.AssertNotCalled(t, "CreateService")
}
