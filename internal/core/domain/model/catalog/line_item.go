package catalog

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when validating a zero-value LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one garment or article inside a service line: a name, how many
// of it and the unit price.
type LineItem struct { //nolint:recvcheck //using for validation
	name     string
	quantity int
	price    kernel.Money
	guard    guard.ConstructorGuard
}

// NewLineItem validates a sub-item. The name must not be blank, quantity must
// be at least 1 and price must be a constructed, non-negative amount.
func NewLineItem(name string, quantity int, price kernel.Money) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) Price() kernel.Money {
	return i.price
}

// Total is price times quantity.
func (i LineItem) Total() kernel.Money {
	return i.price.Times(i.quantity)
}

// WithQuantity returns a copy with a new quantity, validated like NewLineItem.
func (i LineItem) WithQuantity(quantity int) (LineItem, error) {
	return NewLineItem(i.name, quantity, i.price)
}

func (i *LineItem) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = trimmed
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	i.price = price
	return nil
}
