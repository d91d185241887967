package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/cart"
)

type UpdateCartQuantityCommandHandler struct {
	mutator cartMutator
}

func NewUpdateCartQuantityCommandHandler(uowFactory CartUoWFactory, saveAttempts int) UpdateCartQuantityCommandHandler {
	return UpdateCartQuantityCommandHandler{
		mutator: newCartMutator(uowFactory, saveAttempts),
	}
}

// Handle recomputes the owning item's total after the change.
//
// Returns:
//   - ValueIsOutOfRangeError for a quantity outside 1..20
//   - ObjectNotFoundError when the item, its service or the sub-item is missing
func (h UpdateCartQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCartQuantityCommand,
) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return h.mutator.mutate(ctx, cmd.Actor().UserID(), now, func(c *cart.Cart) error {
		_, err := c.UpdateQuantity(cmd.ItemID(), cmd.Service(), cmd.ItemName(), cmd.Quantity(), now)
		return err
	})
}
