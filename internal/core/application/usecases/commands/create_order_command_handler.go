package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"go.uber.org/zap"
)

// DefaultOrderNumberAttempts bounds order number regeneration on collision.
const DefaultOrderNumberAttempts = 3

// CreateOrderSettings tunes CreateOrderCommandHandler. Zero values fall back
// to the package defaults.
type CreateOrderSettings struct {
	NumberAttempts   int
	CartSaveAttempts int
	Turnaround       time.Duration
}

// CreateOrderCommandHandler turns a checkout into a pending order.
//
// The order is stored in its own transaction first. Only then is the cart
// cleared, in a second transaction whose failure is logged and ignored: the
// order stands and the customer may see a stale cart. Finally the owner is
// notified, best effort.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(orderUoWFactory, cartUoWFactory,
//	    order.NewNumberGenerator(), emitter, logger, CreateOrderSettings{})
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrTotalMismatch):
//	    // the client computed different totals
//	case errors.Is(err, errs.ErrDuplicateOrderNumber):
//	    // every candidate number collided
//	}
type CreateOrderCommandHandler struct {
	orderUoWFactory OrderUoWFactory
	cartMutator     cartMutator
	numbers         NumberSource
	notifier        OrderNotifier
	logger          *zap.Logger
	numberAttempts  int
	turnaround      time.Duration
}

func NewCreateOrderCommandHandler(
	orderUoWFactory OrderUoWFactory,
	cartUoWFactory CartUoWFactory,
	numbers NumberSource,
	notifier OrderNotifier,
	logger *zap.Logger,
	settings CreateOrderSettings,
) CreateOrderCommandHandler {
	if settings.NumberAttempts < 1 {
		settings.NumberAttempts = DefaultOrderNumberAttempts
	}
	if settings.Turnaround <= 0 {
		settings.Turnaround = order.DefaultTurnaround
	}

	return CreateOrderCommandHandler{
		orderUoWFactory: orderUoWFactory,
		cartMutator:     newCartMutator(cartUoWFactory, settings.CartSaveAttempts),
		numbers:         numbers,
		notifier:        notifier,
		logger:          logger.With(zap.String("component", "create-order")),
		numberAttempts:  settings.NumberAttempts,
		turnaround:      settings.Turnaround,
	}
}

// Handle validates and stores the order, then clears the cart and notifies.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft := cmd.Draft()
	if draft.EstimatedDoneDate == nil {
		estimated := now.Add(h.turnaround)
		draft.EstimatedDoneDate = &estimated
	}

	created, err := order.NewOrder(kernel.NewUUID(), h.numbers.Next(), draft, now)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = h.store(ctx, created)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrDuplicateOrderNumber) || attempt >= h.numberAttempts {
			return nil, err
		}

		h.logger.Info("order number collided, regenerating",
			zap.String("orderNumber", created.Number().String()),
			zap.Int("attempt", attempt))
		if created, err = created.WithNumber(h.numbers.Next()); err != nil {
			return nil, err
		}
	}

	if _, err = h.cartMutator.mutate(ctx, cmd.Actor().UserID(), now, func(c *cart.Cart) error {
		c.Clear(now)
		return nil
	}); err != nil {
		h.logger.Warn("cart was not cleared after order creation",
			zap.String("orderId", created.ID().String()),
			zap.String("userId", cmd.Actor().UserID().String()),
			zap.Error(err))
	}

	h.notifier.OrderCreated(ctx, created)

	return created, nil
}

func (h CreateOrderCommandHandler) store(ctx context.Context, aggregate *order.Order) error {
	uow := h.orderUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
