package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler moves an order to processing. Staff only.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(orderUoWFactory, emitter)
//	accepted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order is already completed or cancelled
//	}
type AcceptOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, notifier OrderNotifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{transitioner: orderTransitioner{uowFactory: uowFactory, notifier: notifier}}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Actor().RequireStaff("accept order"); err != nil {
		return nil, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), always((*order.Order).Accept))
}

// CompleteOrderCommandHandler finishes a processing order. Staff only.
type CompleteOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, notifier OrderNotifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{transitioner: orderTransitioner{uowFactory: uowFactory, notifier: notifier}}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Actor().RequireStaff("complete order"); err != nil {
		return nil, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), always((*order.Order).Complete))
}

// CancelOrderCommandHandler cancels a pending or processing order. The owner
// and staff may cancel.
type CancelOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier OrderNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{transitioner: orderTransitioner{uowFactory: uowFactory, notifier: notifier}}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), always((*order.Order).Cancel))
}

// SetOrderStatusCommandHandler applies an administrative status change through
// the regular transitions. Setting the current status again is allowed for
// pending (no-op) and processing (re-accept); only real changes notify.
type SetOrderStatusCommandHandler struct {
	transitioner orderTransitioner
}

func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier OrderNotifier) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{transitioner: orderTransitioner{uowFactory: uowFactory, notifier: notifier}}
}

func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Actor().RequireStaff("set order status"); err != nil {
		return nil, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), func(o *order.Order, now time.Time) (bool, error) {
		return o.SetStatus(cmd.Status(), now)
	})
}
