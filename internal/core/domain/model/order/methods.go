package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// DeliveryMethod says how the laundry reaches the customer.
type DeliveryMethod int

const (
	UnknownDelivery DeliveryMethod = iota
	// Pickup means a courier collects and returns the laundry; an address is required.
	Pickup
	// Direct means the customer brings and collects the laundry in person.
	Direct
)

// PaymentMethod is a label only; nothing here verifies or settles payments.
type PaymentMethod int

const (
	UnknownPayment PaymentMethod = iota
	Cash
	Dana
)

func (m DeliveryMethod) String() string {
	switch m {
	case Pickup:
		return "pickup"
	case Direct:
		return "direct"
	case UnknownDelivery:
	}
	return "unknown"
}

func (m DeliveryMethod) Validate() error {
	if m != Pickup && m != Direct {
		return errs.NewValueIsInvalidErrorWithCause("deliveryMethod", fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pickup":
		return Pickup, nil
	case "direct":
		return Direct, nil
	}
	return UnknownDelivery, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMethod",
		fmt.Errorf("%q must be one of pickup, direct", s),
	)
}

func (m PaymentMethod) String() string {
	switch m {
	case Cash:
		return "cash"
	case Dana:
		return "dana"
	case UnknownPayment:
	}
	return "unknown"
}

func (m PaymentMethod) Validate() error {
	if m != Cash && m != Dana {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return Cash, nil
	case "dana":
		return Dana, nil
	}
	return UnknownPayment, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q must be one of cash, dana", s),
	)
}
