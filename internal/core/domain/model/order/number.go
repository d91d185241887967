package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"laundry/internal/pkg/errs"
)

var numberPattern = regexp.MustCompile(`^ORD\d{13,}\d{3}$`)

// Number is the customer-facing order reference: "ORD", the creation time in
// Unix milliseconds and a zero-padded three digit random suffix.
// Uniqueness is enforced by storage, not by generation.
type Number string

// NewNumber validates a stored or submitted order number.
func NewNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q is not a valid order number", s))
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}

// NumberGenerator produces candidate order numbers. Callers retry with a new
// candidate when storage reports a collision.
type NumberGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

// NewNumberGenerator uses the wall clock and math/rand/v2.
func NewNumberGenerator() NumberGenerator {
	return NumberGenerator{
		now:  time.Now,
		intn: rand.IntN, //nolint:gosec // order numbers are references, not secrets
	}
}

// NewNumberGeneratorWith is used by tests that need deterministic numbers.
func NewNumberGeneratorWith(now func() time.Time, intn func(n int) int) NumberGenerator {
	return NumberGenerator{now: now, intn: intn}
}

// Next returns a fresh candidate.
//
// Example:
//
//	gen.Next() // "ORD1759309200000042"
func (g NumberGenerator) Next() Number {
	return Number(fmt.Sprintf("ORD%d%03d", g.now().UnixMilli(), g.intn(1000)))
}
