package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// orderTransitionAttempts bounds the reload-and-replay loop of status changes.
const orderTransitionAttempts = 3

// orderTransitioner loads an order, applies one state machine step and stores
// it as a compare-and-swap on the order version. When another change landed
// first the order is reloaded and the step replayed against the new status, so
// a step that is no longer allowed fails with InvalidTransitionError. Customers
// only ever see their own orders: a foreign order is reported as not found.
type orderTransitioner struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
}

type transitionFunc func(o *order.Order, now time.Time) (changed bool, err error)

func (t orderTransitioner) run(
	ctx context.Context,
	actor identity.Actor,
	orderID kernel.UUID,
	apply transitionFunc,
) (*order.Order, error) {
	var err error
	for range orderTransitionAttempts {
		var (
			aggregate *order.Order
			changed   bool
		)
		aggregate, changed, err = t.runOnce(ctx, actor, orderID, apply)
		if err == nil {
			if changed {
				t.notifier.OrderStatusChanged(ctx, aggregate)
			}
			return aggregate, nil
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, err
		}
	}
	return nil, err
}

func (t orderTransitioner) runOnce(
	ctx context.Context,
	actor identity.Actor,
	orderID kernel.UUID,
	apply transitionFunc,
) (*order.Order, bool, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	if !aggregate.IsOwnedBy(actor.UserID()) && !actor.IsStaff() {
		return nil, false, errs.NewObjectNotFoundError("order", orderID.String())
	}

	changed, err := apply(aggregate, time.Now().UTC())
	if err != nil {
		return nil, false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return aggregate, changed, nil
}

func always(step func(o *order.Order, now time.Time) error) transitionFunc {
	return func(o *order.Order, now time.Time) (bool, error) {
		if err := step(o, now); err != nil {
			return false, err
		}
		return true, nil
	}
}
