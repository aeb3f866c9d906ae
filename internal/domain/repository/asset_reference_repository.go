package repository

import "context"

// AssetReferenceRepository answers whether stored paths are still
// referenced by any content table. Used by the cleanup worker before it
// deletes a candidate orphan.
type AssetReferenceRepository interface {
	// ReferencedPaths returns the subset of paths that some record still
	// points at.
	ReferencedPaths(ctx context.Context, paths []string) (map[string]bool, error)
}
