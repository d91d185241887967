package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromInt")

// ReconciliationTolerance is the largest difference, in rupiah, accepted
// between a submitted total and the one computed from its parts.
var ReconciliationTolerance = decimal.NewFromInt(1)

// Money is a non-negative rupiah amount backed by shopspring/decimal.
// Arithmetic on valid values always yields valid values.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(5000))
//	if err != nil {
//	    return err
//	}
//	total := price.Times(2) // 10000
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates that amount is not negative.
//
// Parameters:
//   - amount: value in rupiah, fractional parts are kept
//
// Returns:
//   - Money: the validated amount
//   - error: ValueIsOutOfRangeError when amount is negative
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return money(amount), nil
}

// MoneyFromInt is a shorthand for whole-rupiah amounts.
func MoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// ZeroMoney returns a valid zero amount, the identity for Add.
func ZeroMoney() Money {
	return money(decimal.Zero)
}

func money(amount decimal.Decimal) Money {
	return Money{amount: amount, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return money(m.amount.Add(other.amount))
}

// Times multiplies the amount by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	return money(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsEqual compares amounts numerically, so 10000 equals 10000.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// WithinTolerance reports whether |m - other| <= ReconciliationTolerance.
//
// Example:
//
//	submitted, _ := kernel.MoneyFromInt(12001)
//	computed, _ := kernel.MoneyFromInt(12000)
//	submitted.WithinTolerance(computed) // true
func (m Money) WithinTolerance(other Money) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(ReconciliationTolerance)
}

// Float64 returns the nearest float, for JSON responses only.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.String()
}

// Reconcile checks a submitted total against the computed one and returns a
// TotalMismatchError naming paramName when they differ by more than the tolerance.
func Reconcile(paramName string, submitted, computed Money) error {
	if !submitted.WithinTolerance(computed) {
		return errs.NewTotalMismatchError(paramName, submitted.String(), computed.String())
	}
	return nil
}

// MustMoney is meant for literals in tests and fixtures.
func MustMoney(amount int64) Money {
	m, err := MoneyFromInt(amount)
	if err != nil {
		panic(fmt.Sprintf("kernel: invalid money literal %d: %v", amount, err))
	}
	return m
}
