package commands

import (
	"errors"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// RemoveCartItemCommand drops one item from the caller's cart. Removing an
// unknown item is not an error.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(actor identity.Actor, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		itemID.Validate(),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	command.actor = actor
	command.itemID = itemID
	return command, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) Actor() identity.Actor {
	return c.actor
}

func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ClearCartCommand empties the caller's cart.
type ClearCartCommand struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewClearCartCommand(actor identity.Actor) (ClearCartCommand, error) {
	if err := actor.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Actor() identity.Actor {
	return c.actor
}
