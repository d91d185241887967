package catalog

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemInput is an unvalidated sub-item as it arrives from a client.
type ItemInput struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// LineInput is an unvalidated service line. TotalPrice is optional; when set
// it must agree with the computed total.
type LineInput struct {
	Service    string
	Items      []ItemInput
	TotalPrice *decimal.Decimal
}

// BuildServiceLine checks a client line against the catalog: the service must
// be known, there must be at least one sub-item, every name must be non-blank,
// every quantity at least 1 and every price non-negative. Validation problems
// across all sub-items are joined into one error.
func BuildServiceLine(in LineInput) (ServiceLine, error) {
	service, serviceErr := ParseServiceType(in.Service)

	if len(in.Items) == 0 {
		return ServiceLine{}, errors.Join(serviceErr, errs.NewValueIsRequiredError("items"))
	}

	items := make([]LineItem, 0, len(in.Items))
	itemErrs := make([]error, 0)
	for idx, raw := range in.Items {
		price, err := kernel.NewMoney(raw.Price)
		if err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].price", idx), err))
			continue
		}
		item, err := NewLineItem(raw.Name, raw.Quantity, price)
		if err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(append([]error{serviceErr}, itemErrs...)...); err != nil {
		return ServiceLine{}, err
	}

	line, err := NewServiceLine(service, items)
	if err != nil {
		return ServiceLine{}, err
	}

	if in.TotalPrice != nil {
		submitted, err := kernel.NewMoney(*in.TotalPrice)
		if err != nil {
			return ServiceLine{}, errs.NewValueIsInvalidErrorWithCause("totalPrice", err)
		}
		if err = line.ReconcileTotal(&submitted); err != nil {
			return ServiceLine{}, err
		}
	}

	return line, nil
}
