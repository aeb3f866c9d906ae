package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
	"github.com/travel-admin/internal/domain/repository"
	"github.com/travel-admin/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

// CleanupWorker drains the asset-cleanup stream and deletes stored
// files that are no longer referenced by any record. A path still
// referenced somewhere is acked without deleting: another record may
// legitimately share the file.
type CleanupWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	storageRepo   repository.StorageRepository
	referenceRepo repository.AssetReferenceRepository
	consumerName  string
	maxRetries    int
}

func NewCleanupWorker(
	streamRepo repository.StreamRepository,
	storageRepo repository.StorageRepository,
	referenceRepo repository.AssetReferenceRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CleanupWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CleanupWorker{
		BaseWorker:    worker.NewBaseWorker("asset-cleanup", consumerGroup, logger),
		streamRepo:    streamRepo,
		storageRepo:   storageRepo,
		referenceRepo: referenceRepo,
		consumerName:  consumerName,
		maxRetries:    maxRetries,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting asset cleanup worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAssetCleanup, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Batch processing failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

func (w *CleanupWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx, domain.StreamAssetCleanup, w.ConsumerGroup(), w.consumerName, maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	for _, msg := range messages {
		w.handleMessage(ctx, msg)
	}
	return len(messages), nil
}

func (w *CleanupWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.AssetCleanupEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Dropping malformed cleanup event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	referenced, err := w.referenceRepo.ReferencedPaths(ctx, []string{event.Path})
	if err != nil {
		logger.Error("Reference check failed",
			zap.String("path", event.Path),
			zap.Error(err))
		w.retryOrDrop(ctx, msg.ID, event)
		return
	}

	if referenced[event.Path] {
		logger.Debug("Path still referenced, skipping delete",
			zap.String("path", event.Path))
		w.ack(ctx, msg.ID)
		return
	}

	if err := w.storageRepo.Remove(ctx, event.Bucket, []string{event.Path}); err != nil {
		logger.Warn("Storage delete failed",
			zap.String("bucket", event.Bucket),
			zap.String("path", event.Path),
			zap.Error(err))
		w.retryOrDrop(ctx, msg.ID, event)
		return
	}

	logger.Info("Orphan asset removed",
		zap.String("bucket", event.Bucket),
		zap.String("path", event.Path),
		zap.String("reason", event.Reason))
	w.ack(ctx, msg.ID)
}

// retryOrDrop acks the failed message and re-publishes it with a bumped
// attempt counter, up to maxRetries.
func (w *CleanupWorker) retryOrDrop(ctx context.Context, messageID string, event domain.AssetCleanupEvent) {
	logger := w.Logger()
	w.ack(ctx, messageID)

	if event.Attempts+1 >= w.maxRetries {
		logger.Error("Giving up on asset cleanup",
			zap.String("bucket", event.Bucket),
			zap.String("path", event.Path),
			zap.Int("attempts", event.Attempts+1))
		return
	}

	event.Attempts++
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamAssetCleanup, event); err != nil {
		logger.Error("Failed to requeue cleanup event",
			zap.String("path", event.Path),
			zap.Error(err))
	}
}

func (w *CleanupWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamAssetCleanup, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
