package catalog

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrServiceLineIsNotConstructed is returned when validating a zero-value ServiceLine.
var ErrServiceLineIsNotConstructed = errors.New("ServiceLine must be created via NewServiceLine constructor")

// ServiceLine is a validated request for one service: the service type and its
// ordered, priced sub-items. It is the unit both carts and orders are built from.
//
// Example:
//
//	kaos, _ := catalog.NewLineItem("Kaos", 2, kernel.MustMoney(5000))
//	line, err := catalog.NewServiceLine(catalog.Ironing, []catalog.LineItem{kaos})
//	if err != nil {
//	    return err
//	}
//	line.TotalPrice() // 10000
type ServiceLine struct { //nolint:recvcheck //using for validation
	service ServiceType
	items   []LineItem
	guard   guard.ConstructorGuard
}

// NewServiceLine validates the service type and every sub-item.
// All problems are reported together.
func NewServiceLine(service ServiceType, items []LineItem) (ServiceLine, error) {
	line := ServiceLine{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setService(service),
		line.setItems(items),
	); err != nil {
		return ServiceLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through NewServiceLine.
func (l ServiceLine) Validate() error {
	return l.guard.Validate(ErrServiceLineIsNotConstructed)
}

func (l ServiceLine) Service() ServiceType {
	return l.service
}

// Items returns a copy of the sub-items in submission order.
func (l ServiceLine) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// TotalPrice is the sum of price times quantity over all sub-items.
func (l ServiceLine) TotalPrice() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range l.items {
		total = total.Add(item.Total())
	}
	return total
}

// ReconcileTotal compares a client-submitted line total with the computed one.
// A nil submitted total is accepted.
func (l ServiceLine) ReconcileTotal(submitted *kernel.Money) error {
	if submitted == nil {
		return nil
	}
	return kernel.Reconcile("totalPrice", *submitted, l.TotalPrice())
}

// WithItemQuantity returns a copy of the line where the first sub-item named
// itemName carries the new quantity.
func (l ServiceLine) WithItemQuantity(itemName string, quantity int) (ServiceLine, error) {
	items := l.Items()
	for idx, item := range items {
		if item.Name() != itemName {
			continue
		}
		updated, err := item.WithQuantity(quantity)
		if err != nil {
			return ServiceLine{}, err
		}
		items[idx] = updated
		return NewServiceLine(l.service, items)
	}
	return ServiceLine{}, errs.NewObjectNotFoundError("item", itemName)
}

func (l *ServiceLine) setService(service ServiceType) error {
	if err := service.Validate(); err != nil {
		return err
	}
	l.service = service
	return nil
}

func (l *ServiceLine) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}
	l.items = make([]LineItem, len(items))
	copy(l.items, items)
	return nil
}
