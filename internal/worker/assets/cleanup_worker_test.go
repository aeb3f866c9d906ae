package assets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/domain"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) Upload(ctx context.Context, bucket, path string, data []byte, contentType string, overwrite bool) error {
	args := m.Called(ctx, bucket, path, data, contentType, overwrite)
	return args.Error(0)
}

func (m *MockStorageRepository) Remove(ctx context.Context, bucket string, paths []string) error {
	args := m.Called(ctx, bucket, paths)
	return args.Error(0)
}

func (m *MockStorageRepository) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	args := m.Called(ctx, bucket, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorageRepository) PublicURL(bucket, path string) string {
	args := m.Called(bucket, path)
	return args.String(0)
}

func (m *MockStorageRepository) ResolvePublicURL(path string) string {
	args := m.Called(path)
	return args.String(0)
}

type MockAssetReferenceRepository struct {
	mock.Mock
}

func (m *MockAssetReferenceRepository) ReferencedPaths(ctx context.Context, paths []string) (map[string]bool, error) {
	args := m.Called(ctx, paths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func cleanupMessage(t *testing.T, event domain.AssetCleanupEvent, id string) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestCleanupWorker_HandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("unreferenced path is deleted and acked", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		referenceRepo := &MockAssetReferenceRepository{}
		w := NewCleanupWorker(streamRepo, storageRepo, referenceRepo, "test-group", 3, zap.NewNop())

		event := domain.AssetCleanupEvent{Bucket: "site-images", Path: "hero/old.jpg", Reason: "replaced"}

		referenceRepo.On("ReferencedPaths", ctx, []string{"hero/old.jpg"}).
			Return(map[string]bool{}, nil)
		storageRepo.On("Remove", ctx, "site-images", []string{"hero/old.jpg"}).Return(nil)
		streamRepo.On("AckMessage", ctx, domain.StreamAssetCleanup, "test-group", "1-0").Return(nil)

		w.handleMessage(ctx, cleanupMessage(t, event, "1-0"))

		storageRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("referenced path is acked without delete", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		referenceRepo := &MockAssetReferenceRepository{}
		w := NewCleanupWorker(streamRepo, storageRepo, referenceRepo, "test-group", 3, zap.NewNop())

		event := domain.AssetCleanupEvent{Bucket: "site-images", Path: "hero/shared.jpg", Reason: "replaced"}

		referenceRepo.On("ReferencedPaths", ctx, []string{"hero/shared.jpg"}).
			Return(map[string]bool{"hero/shared.jpg": true}, nil)
		streamRepo.On("AckMessage", ctx, domain.StreamAssetCleanup, "test-group", "2-0").Return(nil)

		w.handleMessage(ctx, cleanupMessage(t, event, "2-0"))

		storageRepo.AssertNotCalled(t, "Remove")
		streamRepo.AssertExpectations(t)
	})

	t.Run("failed delete is requeued with bumped attempt count", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		referenceRepo := &MockAssetReferenceRepository{}
		w := NewCleanupWorker(streamRepo, storageRepo, referenceRepo, "test-group", 3, zap.NewNop())

		event := domain.AssetCleanupEvent{Bucket: "site-images", Path: "hero/stuck.jpg", Attempts: 0}

		referenceRepo.On("ReferencedPaths", ctx, []string{"hero/stuck.jpg"}).
			Return(map[string]bool{}, nil)
		storageRepo.On("Remove", ctx, "site-images", []string{"hero/stuck.jpg"}).
			Return(context.DeadlineExceeded)
		streamRepo.On("AckMessage", ctx, domain.StreamAssetCleanup, "test-group", "3-0").Return(nil)

		requeued := event
		requeued.Attempts = 1
		streamRepo.On("PublishToStream", ctx, domain.StreamAssetCleanup, requeued).Return(nil)

		w.handleMessage(ctx, cleanupMessage(t, event, "3-0"))

		streamRepo.AssertExpectations(t)
	})

	t.Run("exhausted retries are dropped", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		referenceRepo := &MockAssetReferenceRepository{}
		w := NewCleanupWorker(streamRepo, storageRepo, referenceRepo, "test-group", 3, zap.NewNop())

		event := domain.AssetCleanupEvent{Bucket: "site-images", Path: "hero/stuck.jpg", Attempts: 2}

		referenceRepo.On("ReferencedPaths", ctx, []string{"hero/stuck.jpg"}).
			Return(map[string]bool{}, nil)
		storageRepo.On("Remove", ctx, "site-images", []string{"hero/stuck.jpg"}).
			Return(context.DeadlineExceeded)
		streamRepo.On("AckMessage", ctx, domain.StreamAssetCleanup, "test-group", "4-0").Return(nil)

		w.handleMessage(ctx, cleanupMessage(t, event, "4-0"))

		streamRepo.AssertNotCalled(t, "PublishToStream")
	})

	t.Run("malformed payload is acked and dropped", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		referenceRepo := &MockAssetReferenceRepository{}
		w := NewCleanupWorker(streamRepo, storageRepo, referenceRepo, "test-group", 3, zap.NewNop())

		streamRepo.On("AckMessage", ctx, domain.StreamAssetCleanup, "test-group", "5-0").Return(nil)

		w.handleMessage(ctx, domain.StreamMessage{ID: "5-0", Data: "{not json"})

		storageRepo.AssertNotCalled(t, "Remove")
		referenceRepo.AssertNotCalled(t, "ReferencedPaths")
		streamRepo.AssertExpectations(t)
	})
}
