package commands

import (
	"errors"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
)

// AddCartItemCommand puts one service line into the caller's cart.
// With isEdit set it replaces the line of serviceID instead, which is how
// older clients edit through the add endpoint.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(actor, catalog.LineInput{
//	    Service: "Setrika",
//	    Items:   []catalog.ItemInput{{Name: "Kaos", Quantity: 2, Price: decimal.NewFromInt(5000)}},
//	}, false, nil)
//	if err != nil {
//	    return err // every invalid field, joined
//	}
//	updated, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Actor
	line      catalog.ServiceLine
	isEdit    bool
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(
	actor identity.Actor,
	line catalog.LineInput,
	isEdit bool,
	serviceID *kernel.UUID,
) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		isEdit: isEdit,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setLine(line),
		command.setServiceID(isEdit, serviceID),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Actor() identity.Actor {
	return c.actor
}

func (c AddCartItemCommand) Line() catalog.ServiceLine {
	return c.line
}

// IsEdit reports whether the command replaces an existing item.
func (c AddCartItemCommand) IsEdit() bool {
	return c.isEdit
}

// ServiceID is the item to replace; only meaningful when IsEdit is true.
func (c AddCartItemCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c *AddCartItemCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddCartItemCommand) setLine(in catalog.LineInput) error {
	line, err := catalog.BuildServiceLine(in)
	if err != nil {
		return err
	}

	c.line = line
	return nil
}

func (c *AddCartItemCommand) setServiceID(isEdit bool, serviceID *kernel.UUID) error {
	if !isEdit {
		return nil
	}
	if serviceID == nil {
		return errs.NewValueIsRequiredError("serviceId")
	}
	if err := serviceID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("serviceId", err)
	}

	c.serviceID = *serviceID
	return nil
}
