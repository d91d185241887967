package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// DefaultCartSaveAttempts bounds the load-mutate-save loop of cart commands.
const DefaultCartSaveAttempts = 3

// cartMutator runs a cart change as load, mutate, compare-and-swap save.
// A lost race reloads and replays the change, up to attempts times. A cart
// that was never stored starts empty at version zero.
type cartMutator struct {
	uowFactory CartUoWFactory
	attempts   int
}

func newCartMutator(uowFactory CartUoWFactory, attempts int) cartMutator {
	if attempts < 1 {
		attempts = DefaultCartSaveAttempts
	}
	return cartMutator{uowFactory: uowFactory, attempts: attempts}
}

func (m cartMutator) mutate(
	ctx context.Context,
	userID kernel.UUID,
	now time.Time,
	change func(c *cart.Cart) error,
) (*cart.Cart, error) {
	var err error
	for range m.attempts {
		var saved *cart.Cart
		saved, err = m.mutateOnce(ctx, userID, now, change)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, err
		}
	}
	return nil, err
}

func (m cartMutator) mutateOnce(
	ctx context.Context,
	userID kernel.UUID,
	now time.Time,
	change func(c *cart.Cart) error,
) (*cart.Cart, error) {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	current, err := cartRepo.Get(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		current, err = cart.NewCart(userID, now)
	}
	if err != nil {
		return nil, err
	}

	if err = change(current); err != nil {
		return nil, err
	}

	if err = cartRepo.Save(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
