package queries

import (
	"errors"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery reads the cart of the calling user. A user without a cart gets
// an empty one.
//
// Example:
//
//	query, err := NewGetCartQuery(actor)
//	if err != nil {
//	    return err
//	}
//	cart, err := handler.Handle(ctx, query)
type GetCartQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewGetCartQuery(actor identity.Actor) (GetCartQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Actor() identity.Actor {
	return q.actor
}

// GetCartQueryResponse lists cart items in insertion order with their sum.
type GetCartQueryResponse struct {
	Items       []CartItemView  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
