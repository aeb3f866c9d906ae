package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type blogRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBlogRepository(db *DB, logger *zap.Logger) repository.BlogRepository {
	return &blogRepository{
		db:     db,
		logger: logger,
	}
}

const blogColumns = `
	id, title, slug, excerpt, category_name, category_slug, hero_image,
	content_images, published_at, read_time, author_name, author_title,
	author_image, tags, content, published, featured, created_at, updated_at`

func (r *blogRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY published_at DESC`

	var posts []domain.BlogPost
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("select blog posts: %w", err)
	}
	return posts, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	var post domain.BlogPost
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select blog post: %w", err)
	}
	return &post, nil
}

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	query := `
		INSERT INTO blog_posts (
			id, title, slug, excerpt, category_name, category_slug,
			hero_image, content_images, published_at, read_time,
			author_name, author_title, author_image, tags, content,
			published, featured, created_at, updated_at
		) VALUES (
			:id, :title, :slug, :excerpt, :category_name, :category_slug,
			:hero_image, :content_images, :published_at, :read_time,
			:author_name, :author_title, :author_image, :tags, :content,
			:published, :featured, NOW(), NOW()
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}

func (r *blogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			category_name = :category_name,
			category_slug = :category_slug,
			hero_image = :hero_image,
			content_images = :content_images,
			published_at = :published_at,
			read_time = :read_time,
			author_name = :author_name,
			author_title = :author_title,
			author_image = :author_image,
			tags = :tags,
			content = :content,
			published = :published,
			featured = :featured,
			updated_at = NOW()
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}
