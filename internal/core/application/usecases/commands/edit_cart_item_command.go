package commands

import (
	"errors"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrEditCartItemCommandIsNotConstructed = errors.New(
		"EditCartItemCommand must be created via NewEditCartItemCommand constructor",
	)
)

// EditCartItemCommand replaces the line of one cart item in place.
type EditCartItemCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	itemID kernel.UUID
	line   catalog.ServiceLine

	guard guard.ConstructorGuard
}

func NewEditCartItemCommand(actor identity.Actor, itemID kernel.UUID, line catalog.LineInput) (EditCartItemCommand, error) {
	command := EditCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setItemID(itemID),
		command.setLine(line),
	); err != nil {
		return EditCartItemCommand{}, err
	}

	return command, nil
}

func (c EditCartItemCommand) Validate() error {
	return c.guard.Validate(ErrEditCartItemCommandIsNotConstructed)
}

func (c EditCartItemCommand) Actor() identity.Actor {
	return c.actor
}

func (c EditCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c EditCartItemCommand) Line() catalog.ServiceLine {
	return c.line
}

func (c *EditCartItemCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *EditCartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *EditCartItemCommand) setLine(in catalog.LineInput) error {
	line, err := catalog.BuildServiceLine(in)
	if err != nil {
		return err
	}

	c.line = line
	return nil
}
