package worker

import (
	"context"
)

// Worker is implemented by every background worker.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
