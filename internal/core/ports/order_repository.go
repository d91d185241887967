package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing is served by queries, not by this repository.
type OrderRepository interface {
	// Add persists a new order. The store's unique index on the order number is
	// authoritative: a collision returns a DuplicateOrderNumberError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id regardless of owner. Ownership is checked by
	// the caller.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
