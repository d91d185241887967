package queries

import (
	"errors"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/pkg/guard"
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
	ErrGetUnreadCountQueryIsNotConstructed = errors.New(
		"GetUnreadCountQuery must be created via NewGetUnreadCountQuery constructor",
	)
)

// ListNotificationsQuery lists the caller's notifications, newest first.
type ListNotificationsQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(actor identity.Actor) (ListNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// GetUnreadCountQuery counts the caller's unread notifications.
type GetUnreadCountQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewGetUnreadCountQuery(actor identity.Actor) (GetUnreadCountQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUnreadCountQuery{}, err
	}
	return GetUnreadCountQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUnreadCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadCountQueryIsNotConstructed)
}
