package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrUpdateCartQuantityCommandIsNotConstructed = errors.New(
		"UpdateCartQuantityCommand must be created via NewUpdateCartQuantityCommand constructor",
	)
)

// UpdateCartQuantityCommand sets the quantity of one sub-item of a cart item.
// The service name is optional; when given it must match the item.
// Quantity bounds are checked by the cart itself.
type UpdateCartQuantityCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	itemID   kernel.UUID
	service  *catalog.ServiceType
	itemName string
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateCartQuantityCommand(
	actor identity.Actor,
	itemID kernel.UUID,
	service string,
	itemName string,
	quantity int,
) (UpdateCartQuantityCommand, error) {
	command := UpdateCartQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setItemID(itemID),
		command.setService(service),
		command.setItemName(itemName),
	); err != nil {
		return UpdateCartQuantityCommand{}, err
	}

	return command, nil
}

func (c UpdateCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartQuantityCommandIsNotConstructed)
}

func (c UpdateCartQuantityCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateCartQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Service is nil when the client did not name one.
func (c UpdateCartQuantityCommand) Service() *catalog.ServiceType {
	return c.service
}

func (c UpdateCartQuantityCommand) ItemName() string {
	return c.itemName
}

func (c UpdateCartQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartQuantityCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateCartQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateCartQuantityCommand) setService(service string) error {
	if strings.TrimSpace(service) == "" {
		return nil
	}
	parsed, err := catalog.ParseServiceType(service)
	if err != nil {
		return err
	}

	c.service = &parsed
	return nil
}

func (c *UpdateCartQuantityCommand) setItemName(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}

	c.itemName = itemName
	return nil
}
