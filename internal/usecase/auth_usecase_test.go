package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/config"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase"
	"github.com/travel-admin/internal/usecase/dto"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "correct-horse",
		JWTSecret:     "test-secret",
		SessionTTL:    time.Hour,
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token and session", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		uc := usecase.NewAuthUseCase(sessionRepo, testAuthConfig(), zap.NewNop())

		var saved *domain.Session
		sessionRepo.On("Save", ctx, mock.AnythingOfType("*domain.Session"), time.Hour).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.Session)
			}).Return(nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin@example.com", resp.Email)
		require.NotNil(t, saved)
		assert.Equal(t, "admin@example.com", saved.Email)
		assert.NotEmpty(t, saved.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		uc := usecase.NewAuthUseCase(sessionRepo, testAuthConfig(), zap.NewNop())

		resp, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidCredentials, err)
		sessionRepo.AssertNotCalled(t, "Save")
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		uc := usecase.NewAuthUseCase(sessionRepo, testAuthConfig(), zap.NewNop())

		var saved *domain.Session
		sessionRepo.On("Save", ctx, mock.AnythingOfType("*domain.Session"), time.Hour).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.Session)
			}).Return(nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		sessionRepo.On("Get", ctx, saved.ID).Return(saved, nil)

		session, err := uc.Authenticate(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, session.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(&MockSessionRepository{}, testAuthConfig(), zap.NewNop())

		session, err := uc.Authenticate(ctx, "not-a-jwt")

		assert.Nil(t, session)
		assert.Equal(t, errors.ErrUnauthorized, err)
	})

	t.Run("revoked session", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		uc := usecase.NewAuthUseCase(sessionRepo, testAuthConfig(), zap.NewNop())

		var saved *domain.Session
		sessionRepo.On("Save", ctx, mock.AnythingOfType("*domain.Session"), time.Hour).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.Session)
			}).Return(nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		// Session no longer in redis.
		sessionRepo.On("Get", ctx, saved.ID).Return(nil, nil)

		session, err := uc.Authenticate(ctx, resp.Token)
		assert.Nil(t, session)
		assert.Equal(t, errors.ErrSessionExpired, err)
	})
}
