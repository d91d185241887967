package queries

import (
	"errors"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrListAllOrdersQueryIsNotConstructed = errors.New(
		"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
	)
)

// GetOrderQuery reads one order. Customers only see their own orders;
// staff see every order.
type GetOrderQuery struct {
	actor   identity.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(actor identity.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ListOrdersQuery lists the orders of the calling user, newest first.
type ListOrdersQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor identity.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListAllOrdersQuery lists every order with its owner, newest first.
// Only staff may build it.
type ListAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery(actor identity.Actor) (ListAllOrdersQuery, error) {
	if err := actor.RequireStaff("list all orders"); err != nil {
		return ListAllOrdersQuery{}, err
	}
	return ListAllOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

// OwnerView summarises the user who placed an order. It is nil when the
// auth service has no such user.
type OwnerView struct {
	ID    kernel.UUID `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

// AdminOrderView is an order plus its owner summary.
type AdminOrderView struct {
	OrderView
	User *OwnerView `json:"user"`
}
