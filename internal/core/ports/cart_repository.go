// Package ports defines the contracts between the laundry core and its
// infrastructure: repositories, the unit of work, the event publisher and
// the unread-counter cache.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"
)

// CartRepository persists whole carts keyed by their owner.
type CartRepository interface {
	// Get returns the stored cart of userID, or an ObjectNotFoundError when the
	// user never had one.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Save writes the cart if the stored version still equals aggregate.Version()
	// and bumps the stored version. A version of zero means the cart is new.
	//
	// Returns a VersionIsInvalidError when another writer got there first; the
	// caller is expected to reload and retry.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
