package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/assetpath"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/slug"
	"github.com/travel-admin/internal/usecase/dto"
)

type BlogUseCase struct {
	blogRepo    repository.BlogRepository
	storageRepo repository.StorageRepository
	streamRepo  repository.StreamRepository
	logger      *zap.Logger
}

func NewBlogUseCase(
	blogRepo repository.BlogRepository,
	storageRepo repository.StorageRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *BlogUseCase {
	return &BlogUseCase{
		blogRepo:    blogRepo,
		storageRepo: storageRepo,
		streamRepo:  streamRepo,
		logger:      logger,
	}
}

func (uc *BlogUseCase) List(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := uc.blogRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list blog posts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return posts, nil
}

func (uc *BlogUseCase) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load blog post", zap.String("post_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if post == nil {
		return nil, errors.ErrBlogPostNotFound
	}
	return post, nil
}

func (uc *BlogUseCase) Create(ctx context.Context, req dto.BlogPostRequest) (*domain.BlogPost, error) {
	post := postFromRequest(req)

	// The timestamp suffix keeps slugs unique across posts that share a
	// title.
	post.Slug = fmt.Sprintf("%s-%d", slug.Make(req.Title), time.Now().UnixMilli())
	post.PublishedAt = time.Now()

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create blog post", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Blog post created",
		zap.String("post_id", post.ID),
		zap.String("slug", post.Slug))
	return post, nil
}

func (uc *BlogUseCase) Update(ctx context.Context, id string, req dto.BlogPostRequest) (*domain.BlogPost, error) {
	existing, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post := postFromRequest(req)
	post.ID = id
	post.Slug = existing.Slug
	post.PublishedAt = existing.PublishedAt

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		uc.logger.Error("Failed to update blog post", zap.String("post_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.queueDroppedAssets(ctx, existing, post)
	return post, nil
}

// Delete removes the post's stored images across all three blog buckets
// before dropping the record.
func (uc *BlogUseCase) Delete(ctx context.Context, id string) error {
	post, err := uc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	uc.removeBlogAssets(ctx, post)

	if err := uc.blogRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete blog post", zap.String("post_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	uc.logger.Info("Blog post deleted", zap.String("post_id", id))
	return nil
}

func (uc *BlogUseCase) removeBlogAssets(ctx context.Context, post *domain.BlogPost) {
	uc.removeFromBucket(ctx, assetpath.BucketBlogPosts, pathsOrNil(post.HeroImage))
	uc.removeFromBucket(ctx, assetpath.BucketBlogAuthors, pathsOrNil(post.AuthorImage))

	var contentPaths []string
	for _, img := range post.ContentImages {
		if img.Path != "" {
			contentPaths = append(contentPaths, img.Path)
		}
	}
	uc.removeFromBucket(ctx, assetpath.BucketBlogContent, contentPaths)
}

func (uc *BlogUseCase) queueDroppedAssets(ctx context.Context, old, updated *domain.BlogPost) {
	kept := make(map[string]bool)
	for _, p := range updated.AssetPaths() {
		kept[p] = true
	}

	if old.HeroImage != "" && !kept[old.HeroImage] {
		uc.removeFromBucket(ctx, assetpath.BucketBlogPosts, []string{old.HeroImage})
	}
	if old.AuthorImage != "" && !kept[old.AuthorImage] {
		uc.removeFromBucket(ctx, assetpath.BucketBlogAuthors, []string{old.AuthorImage})
	}

	var dropped []string
	for _, img := range old.ContentImages {
		if img.Path != "" && !kept[img.Path] {
			dropped = append(dropped, img.Path)
		}
	}
	uc.removeFromBucket(ctx, assetpath.BucketBlogContent, dropped)
}

func (uc *BlogUseCase) removeFromBucket(ctx context.Context, bucket string, paths []string) {
	if len(paths) == 0 {
		return
	}
	if err := uc.storageRepo.Remove(ctx, bucket, paths); err != nil {
		uc.logger.Warn("Blog asset remove failed, queueing for cleanup",
			zap.String("bucket", bucket),
			zap.Error(err))
		for _, p := range paths {
			event := domain.AssetCleanupEvent{Bucket: bucket, Path: p, Reason: "delete_failed"}
			if pubErr := uc.streamRepo.PublishToStream(ctx, domain.StreamAssetCleanup, event); pubErr != nil {
				uc.logger.Warn("Failed to queue blog asset cleanup",
					zap.String("path", p),
					zap.Error(pubErr))
			}
		}
	}
}

func pathsOrNil(path string) []string {
	if path == "" {
		return nil
	}
	return []string{path}
}

func postFromRequest(req dto.BlogPostRequest) *domain.BlogPost {
	tags := make(domain.BlogTags, len(req.Tags))
	for i, name := range req.Tags {
		tags[i] = domain.BlogTag{Name: name, Slug: slug.Make(name)}
	}

	readTime := req.ReadTime
	if readTime == 0 {
		readTime = estimateReadTime(req.Content)
	}

	return &domain.BlogPost{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		CategoryName:  req.CategoryName,
		CategorySlug:  slug.Make(req.CategoryName),
		HeroImage:     req.HeroImage,
		ContentImages: req.ContentImages,
		ReadTime:      readTime,
		AuthorName:    req.AuthorName,
		AuthorTitle:   req.AuthorTitle,
		AuthorImage:   req.AuthorImage,
		Tags:          tags,
		Content:       req.Content,
		Published:     req.Published,
		Featured:      req.Featured,
	}
}

// estimateReadTime assumes roughly 200 words per minute.
func estimateReadTime(sections domain.BlogSections) int {
	words := 0
	for _, s := range sections {
		words += len(strings.Fields(s.Content))
	}
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
