package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/config"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase/dto"
)

// AuthUseCase issues JWTs backed by redis sessions. The token only
// carries the session id; revoking the session invalidates the token
// immediately.
type AuthUseCase struct {
	sessionRepo repository.SessionRepository
	cfg         *config.AuthConfig
	logger      *zap.Logger
}

func NewAuthUseCase(
	sessionRepo repository.SessionRepository,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		sessionRepo: sessionRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(uc.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(uc.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		uc.logger.Warn("Login rejected", zap.String("email", req.Email))
		return nil, errors.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Email:     req.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(uc.cfg.SessionTTL),
	}

	if err := uc.sessionRepo.Save(ctx, session, uc.cfg.SessionTTL); err != nil {
		uc.logger.Error("Failed to save session", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": session.ID,
		"sub": session.Email,
		"iat": now.Unix(),
		"exp": session.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("Admin logged in", zap.String("session_id", session.ID))
	return &dto.LoginResponse{
		Token:     signed,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt.Unix(),
	}, nil
}

// Authenticate validates a bearer token and resolves its session.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.ErrUnauthorized
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, errors.ErrUnauthorized
	}

	session, err := uc.sessionRepo.Get(ctx, sid)
	if err != nil {
		uc.logger.Error("Failed to load session", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, errors.ErrSessionExpired
	}
	return session, nil
}

// Logout revokes the session behind a valid token.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	session, err := uc.Authenticate(ctx, tokenString)
	if err != nil {
		return err
	}

	if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
		uc.logger.Error("Failed to delete session", zap.String("session_id", session.ID), zap.Error(err))
		return errors.ErrInternalServer
	}

	uc.logger.Info("Admin logged out", zap.String("session_id", session.ID))
	return nil
}
