package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// UnreadCounter caches the number of unread notifications per user. It is an
// optimisation only: the store stays the source of truth.
type UnreadCounter interface {
	// Get returns the cached count and whether it was present.
	Get(ctx context.Context, userID kernel.UUID) (int64, bool, error)
	Set(ctx context.Context, userID kernel.UUID, count int64) error
	Invalidate(ctx context.Context, userID kernel.UUID) error
}
