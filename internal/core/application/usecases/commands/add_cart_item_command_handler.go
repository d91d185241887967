package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/cart"
)

// AddCartItemCommandHandler adds a service line to a cart, or edits one when
// the command asks for it.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(cartUoWFactory, DefaultCartSaveAttempts)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDuplicateService) {
//	    // the cart already holds this service
//	}
type AddCartItemCommandHandler struct {
	mutator cartMutator
}

// NewAddCartItemCommandHandler creates the handler. saveAttempts bounds
// retries after losing a concurrent save; values below 1 mean the default.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, saveAttempts int) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		mutator: newCartMutator(uowFactory, saveAttempts),
	}
}

// Handle returns the cart as saved.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return h.mutator.mutate(ctx, cmd.Actor().UserID(), now, func(c *cart.Cart) error {
		if cmd.IsEdit() {
			_, err := c.EditItem(cmd.ServiceID(), cmd.Line(), now)
			return err
		}
		_, err := c.AddItem(cmd.Line(), now)
		return err
	})
}
