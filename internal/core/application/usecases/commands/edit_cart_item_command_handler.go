package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/cart"
)

// EditCartItemCommandHandler replaces a cart item's line, keeping its id and
// creation time.
type EditCartItemCommandHandler struct {
	mutator cartMutator
}

func NewEditCartItemCommandHandler(uowFactory CartUoWFactory, saveAttempts int) EditCartItemCommandHandler {
	return EditCartItemCommandHandler{
		mutator: newCartMutator(uowFactory, saveAttempts),
	}
}

// Handle returns ObjectNotFoundError for an unknown item and
// DuplicateServiceError when another item already uses the new service.
func (h EditCartItemCommandHandler) Handle(ctx context.Context, cmd EditCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return h.mutator.mutate(ctx, cmd.Actor().UserID(), now, func(c *cart.Cart) error {
		_, err := c.EditItem(cmd.ItemID(), cmd.Line(), now)
		return err
	})
}
