package catalog

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// ServiceType is one of the fixed laundry services on offer.
// Its string form is the customer-facing name used on the wire.
type ServiceType int

const (
	// UnknownService is the zero value and never valid.
	UnknownService ServiceType = iota

	// WashAndIron is "Cuci & Setrika".
	WashAndIron

	// Ironing is "Setrika".
	Ironing

	// Bedding is "Alas Kasur".
	Bedding

	// ShoeCleaning is "Cuci Sepatu".
	ShoeCleaning
)

func getServiceNames() map[ServiceType]string {
	//nolint:exhaustive // UnknownService has no name
	return map[ServiceType]string{
		WashAndIron:  "Cuci & Setrika",
		Ironing:      "Setrika",
		Bedding:      "Alas Kasur",
		ShoeCleaning: "Cuci Sepatu",
	}
}

// ServiceTypes lists every valid service in catalog order.
func ServiceTypes() []ServiceType {
	return []ServiceType{WashAndIron, Ironing, Bedding, ShoeCleaning}
}

// ParseServiceType maps a customer-facing name to its ServiceType.
// Matching ignores surrounding whitespace but is otherwise exact.
func ParseServiceType(name string) (ServiceType, error) {
	trimmed := strings.TrimSpace(name)
	for s, n := range getServiceNames() {
		if n == trimmed {
			return s, nil
		}
	}
	return UnknownService, errs.NewValueIsInvalidErrorWithCause(
		"service",
		fmt.Errorf("%q is not a known service", name),
	)
}

// Validate rejects UnknownService and out-of-range values.
func (s ServiceType) Validate() error {
	if _, ok := getServiceNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service", fmt.Errorf("%d is not a known service", s))
	}
	return nil
}

func (s ServiceType) String() string {
	if n, ok := getServiceNames()[s]; ok {
		return n
	}
	return "Unknown"
}
