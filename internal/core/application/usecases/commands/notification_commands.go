package commands

import (
	"errors"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrNotificationCommandIsNotConstructed = errors.New(
		"NotificationCommand must be created via NewNotificationCommand constructor",
	)
	ErrDeleteAllNotificationsCommandIsNotConstructed = errors.New(
		"DeleteAllNotificationsCommand must be created via NewDeleteAllNotificationsCommand constructor",
	)
)

// NotificationCommand targets one notification of the caller. It is used to
// mark read and to delete.
type NotificationCommand struct { //nolint:recvcheck //using for validation
	actor          identity.Actor
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewNotificationCommand(actor identity.Actor, notificationID kernel.UUID) (NotificationCommand, error) {
	if err := errors.Join(actor.Validate(), notificationID.Validate()); err != nil {
		return NotificationCommand{}, err
	}

	return NotificationCommand{
		actor:          actor,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c NotificationCommand) Validate() error {
	return c.guard.Validate(ErrNotificationCommandIsNotConstructed)
}

func (c NotificationCommand) Actor() identity.Actor {
	return c.actor
}

func (c NotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

type DeleteAllNotificationsCommand struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewDeleteAllNotificationsCommand(actor identity.Actor) (DeleteAllNotificationsCommand, error) {
	if err := actor.Validate(); err != nil {
		return DeleteAllNotificationsCommand{}, err
	}

	return DeleteAllNotificationsCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteAllNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllNotificationsCommandIsNotConstructed)
}

func (c DeleteAllNotificationsCommand) Actor() identity.Actor {
	return c.actor
}
