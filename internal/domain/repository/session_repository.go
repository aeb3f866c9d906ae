package repository

import (
	"context"
	"time"

	"github.com/travel-admin/internal/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error

	// Get returns nil without error when the session does not exist.
	Get(ctx context.Context, id string) (*domain.Session, error)

	Delete(ctx context.Context, id string) error
}
