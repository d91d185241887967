package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderParams is the raw checkout request. Subtotal and
// EstimatedDoneDate are optional.
type CreateOrderParams struct {
	DeliveryMethod    string
	PaymentMethod     string
	Items             []catalog.LineInput
	DeliveryAddress   string
	Notes             string
	DeliveryFee       decimal.Decimal
	Subtotal          *decimal.Decimal
	TotalAmount       decimal.Decimal
	EstimatedDoneDate *time.Time
}

// CreateOrderCommand represents a checkout of the caller's service lines.
// Every line is validated against the catalog and its own total on
// construction; amounts across lines are reconciled when the order is built.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, CreateOrderParams{
//	    DeliveryMethod: "direct",
//	    PaymentMethod:  "cash",
//	    Items:          lines,
//	    DeliveryFee:    decimal.NewFromInt(2000),
//	    TotalAmount:    decimal.NewFromInt(12000),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor
	draft order.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand joins every invalid field into one error.
func NewCreateOrderCommand(actor identity.Actor, params CreateOrderParams) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setMethods(params.DeliveryMethod, params.PaymentMethod),
		command.setItems(params.Items),
		command.setAmounts(params.DeliveryFee, params.Subtotal, params.TotalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.draft.DeliveryAddress = strings.TrimSpace(params.DeliveryAddress)
	command.draft.Notes = params.Notes
	command.draft.EstimatedDoneDate = params.EstimatedDoneDate

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

// Draft returns the order request owned by the caller.
func (c CreateOrderCommand) Draft() order.Draft {
	draft := c.draft
	draft.Items = append([]catalog.ServiceLine(nil), c.draft.Items...)
	if c.draft.ItemsTotal != nil {
		itemsTotal := *c.draft.ItemsTotal
		draft.ItemsTotal = &itemsTotal
	}
	return draft
}

func (c *CreateOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	c.draft.UserID = actor.UserID()
	return nil
}

func (c *CreateOrderCommand) setMethods(deliveryMethod, paymentMethod string) error {
	delivery, deliveryErr := order.ParseDeliveryMethod(deliveryMethod)
	payment, paymentErr := order.ParsePaymentMethod(paymentMethod)
	if err := errors.Join(deliveryErr, paymentErr); err != nil {
		return err
	}

	c.draft.DeliveryMethod = delivery
	c.draft.PaymentMethod = payment
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []catalog.LineInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	lines := make([]catalog.ServiceLine, 0, len(inputs))
	lineErrs := make([]error, 0)
	itemsTotal := kernel.ZeroMoney()
	for idx, in := range inputs {
		line, err := catalog.BuildServiceLine(in)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d]: %w", idx, err))
			continue
		}
		lines = append(lines, line)

		lineTotal := line.TotalPrice()
		if in.TotalPrice != nil {
			// BuildServiceLine already rejected negative totals.
			lineTotal, _ = kernel.NewMoney(*in.TotalPrice)
		}
		itemsTotal = itemsTotal.Add(lineTotal)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.draft.Items = lines
	c.draft.ItemsTotal = &itemsTotal
	return nil
}

func (c *CreateOrderCommand) setAmounts(deliveryFee decimal.Decimal, subtotal *decimal.Decimal, totalAmount decimal.Decimal) error {
	fee, feeErr := kernel.NewMoney(deliveryFee)
	if feeErr != nil {
		feeErr = errs.NewValueIsInvalidErrorWithCause("deliveryFee", feeErr)
	}
	total, totalErr := kernel.NewMoney(totalAmount)
	if totalErr != nil {
		totalErr = errs.NewValueIsInvalidErrorWithCause("totalAmount", totalErr)
	}
	var submitted *kernel.Money
	var subtotalErr error
	if subtotal != nil {
		var value kernel.Money
		value, subtotalErr = kernel.NewMoney(*subtotal)
		if subtotalErr != nil {
			subtotalErr = errs.NewValueIsInvalidErrorWithCause("subtotal", subtotalErr)
		} else {
			submitted = &value
		}
	}
	if err := errors.Join(feeErr, totalErr, subtotalErr); err != nil {
		return err
	}

	c.draft.DeliveryFee = fee
	c.draft.TotalAmount = total
	c.draft.Subtotal = submitted
	return nil
}
