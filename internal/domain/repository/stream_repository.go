package repository

import (
	"context"

	"github.com/travel-admin/internal/domain"
)

// StreamRepository is the redis-streams transport behind the asset
// cleanup queue.
type StreamRepository interface {
	// CreateConsumerGroup creates the group, tolerating an existing one.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages without blocking
	// indefinitely.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage confirms a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream serializes data as JSON and appends it.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
