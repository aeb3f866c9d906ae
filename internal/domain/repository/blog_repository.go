package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

type BlogRepository interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}
