package repository

import "context"

// StorageRepository is the client for the hosted object-storage
// service. Paths are bucket-relative keys like "hero/banner-171234.jpg".
type StorageRepository interface {
	// Upload writes the file bytes. With overwrite set an existing
	// object at the same path is replaced.
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string, overwrite bool) error

	// Remove deletes the given objects from the bucket.
	Remove(ctx context.Context, bucket string, paths []string) error

	// List returns object keys under a prefix.
	List(ctx context.Context, bucket, prefix string) ([]string, error)

	// PublicURL builds the public fetch URL for a stored object.
	PublicURL(bucket, path string) string

	// ResolvePublicURL maps a stored path value to a fetchable URL.
	// Absolute URLs pass through unchanged; empty input resolves to ""
	// so callers can render a placeholder.
	ResolvePublicURL(path string) string
}
