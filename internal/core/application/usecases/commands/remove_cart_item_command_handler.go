package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/cart"
)

type RemoveCartItemCommandHandler struct {
	mutator cartMutator
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory, saveAttempts int) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		mutator: newCartMutator(uowFactory, saveAttempts),
	}
}

// Handle returns the resulting cart, which may be empty.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return h.mutator.mutate(ctx, cmd.Actor().UserID(), now, func(c *cart.Cart) error {
		c.RemoveItem(cmd.ItemID(), now)
		return nil
	})
}

type ClearCartCommandHandler struct {
	mutator cartMutator
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory, saveAttempts int) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		mutator: newCartMutator(uowFactory, saveAttempts),
	}
}

// Handle keeps the cart row and drops every item.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return h.mutator.mutate(ctx, cmd.Actor().UserID(), now, func(c *cart.Cart) error {
		c.Clear(now)
		return nil
	})
}
