package domain

// StreamAssetCleanup is the redis stream that carries orphan-asset
// candidates to the cleanup worker.
const StreamAssetCleanup = "assets:cleanup"

// AssetCleanupEvent is queued whenever a stored file may have become
// unreferenced: its record was deleted while the storage delete failed,
// or its reference was replaced by a new upload. The worker verifies the
// path is unreferenced before removing it.
type AssetCleanupEvent struct {
	Bucket   string `json:"bucket"`
	Path     string `json:"path"`
	Reason   string `json:"reason"`
	Attempts int    `json:"attempts"`
}

// StreamMessage is a raw message read from a redis stream.
type StreamMessage struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}
