package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/pkg/assetpath"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase/dto"
)

// Image MIME types accepted for upload.
var allowedContentTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/gif":     true,
	"image/svg+xml": true,
}

// AssetUseCase runs the upload pipeline: validate locally, upload to
// storage, and queue the replaced file (if any) for cleanup. Files are
// written before any record references them, so a crash between the two
// steps leaves an orphan file, never a dangling reference.
type AssetUseCase struct {
	storageRepo repository.StorageRepository
	streamRepo  repository.StreamRepository
	logger      *zap.Logger
}

func NewAssetUseCase(
	storageRepo repository.StorageRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *AssetUseCase {
	return &AssetUseCase{
		storageRepo: storageRepo,
		streamRepo:  streamRepo,
		logger:      logger,
	}
}

// Upload validates the file against its category and writes it to
// storage under a fresh timestamped key. When replacesPath names the
// previously stored file, that file is queued for garbage collection.
func (uc *AssetUseCase) Upload(
	ctx context.Context,
	categoryKey, originalName, contentType string,
	data []byte,
	replacesPath string,
) (*dto.UploadResult, error) {
	category, ok := assetpath.ByKey(categoryKey)
	if !ok {
		return nil, errors.ErrUnknownUploadCategory
	}

	if !allowedContentTypes[strings.ToLower(contentType)] {
		return nil, errors.ErrUnsupportedFileType
	}

	if int64(len(data)) > category.MaxSize {
		return nil, errors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"max_size": category.MaxSize,
			"size":     len(data),
		})
	}

	path := assetpath.Build(category, originalName)

	if err := uc.storageRepo.Upload(ctx, category.Bucket, path, data, contentType, false); err != nil {
		uc.logger.Error("Failed to upload asset",
			zap.String("bucket", category.Bucket),
			zap.String("path", path),
			zap.Error(err))
		return nil, errors.ErrStorageError
	}

	if replacesPath != "" && replacesPath != path {
		uc.queueCleanup(ctx, category.Bucket, replacesPath, "replaced")
	}

	uc.logger.Info("Asset uploaded",
		zap.String("bucket", category.Bucket),
		zap.String("path", path))

	return &dto.UploadResult{
		Bucket:    category.Bucket,
		Path:      path,
		PublicURL: uc.storageRepo.PublicURL(category.Bucket, path),
	}, nil
}

// RemoveAll deletes stored files immediately and falls back to the
// cleanup queue for anything the storage call could not confirm.
func (uc *AssetUseCase) RemoveAll(ctx context.Context, bucket string, paths []string) {
	if len(paths) == 0 {
		return
	}

	if err := uc.storageRepo.Remove(ctx, bucket, paths); err != nil {
		uc.logger.Warn("Storage remove failed, queueing for cleanup",
			zap.String("bucket", bucket),
			zap.Int("count", len(paths)),
			zap.Error(err))
		for _, p := range paths {
			uc.queueCleanup(ctx, bucket, p, "delete_failed")
		}
	}
}

func (uc *AssetUseCase) queueCleanup(ctx context.Context, bucket, path, reason string) {
	event := domain.AssetCleanupEvent{
		Bucket: bucket,
		Path:   path,
		Reason: reason,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAssetCleanup, event); err != nil {
		// Worst case is an orphan file in storage, not data loss.
		uc.logger.Warn("Failed to queue asset cleanup",
			zap.String("bucket", bucket),
			zap.String("path", path),
			zap.Error(err))
	}
}
