package commands

import (
	"errors"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrOrderActionCommandIsNotConstructed = errors.New(
		"OrderActionCommand must be created via NewOrderActionCommand constructor",
	)
	ErrSetOrderStatusCommandIsNotConstructed = errors.New(
		"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
	)
)

// OrderActionCommand names an order and who acts on it. It is shared by the
// accept, complete and cancel handlers.
type OrderActionCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOrderActionCommand(actor identity.Actor, orderID kernel.UUID) (OrderActionCommand, error) {
	command := OrderActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderID(orderID),
	); err != nil {
		return OrderActionCommand{}, err
	}

	return command, nil
}

func (c OrderActionCommand) Validate() error {
	return c.guard.Validate(ErrOrderActionCommandIsNotConstructed)
}

func (c OrderActionCommand) Actor() identity.Actor {
	return c.actor
}

func (c OrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *OrderActionCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *OrderActionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

// SetOrderStatusCommand is the administrative status change.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	OrderActionCommand

	status order.Status
	guard  guard.ConstructorGuard
}

// NewSetOrderStatusCommand accepts canonical status names only, in any case.
func NewSetOrderStatusCommand(actor identity.Actor, orderID kernel.UUID, status string) (SetOrderStatusCommand, error) {
	action, actionErr := NewOrderActionCommand(actor, orderID)
	parsed, statusErr := order.ParseStatus(status)
	if err := errors.Join(actionErr, statusErr); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		OrderActionCommand: action,
		status:             parsed,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}
