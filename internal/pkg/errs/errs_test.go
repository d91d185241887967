package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	cause := errors.New("must be one of Setrika, Cuci Kering, Cuci Basah")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("order", "ORD1759309200000042"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: ORD1759309200000042",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("cartItem", "line-7", errors.New("cart is empty")),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: cartItem, ID is: line-7 (cause: cart is empty)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("paymentMethod"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: paymentMethod",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("service", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: service (cause: must be one of Setrika, Cuci Kering, Cuci Basah)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 21, 1, 20),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 21 is quantity, min value is 1, max value is 20",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, 20, errors.New("too few")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 20 (cause: too few)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("deliveryAddress"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: deliveryAddress",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("userId", errors.New("nil UUID")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: userId (cause: nil UUID)",
		},
		{
			name:     "stale version",
			err:      errs.NewVersionIsInvalidError("order"),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: order",
		},
		{
			name:     "stale version with cause",
			err:      errs.NewVersionIsInvalidErrorWithCause("cart", errors.New("stored version is 4")),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: cart (cause: stored version is 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handle request: %w", tt.err), tt.sentinel)
		})
	}
}

func TestValueIsOutOfRangeError_Fields(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", 25, 1, 20)

	assert.Equal(t, "quantity", err.ParamName)
	assert.Equal(t, 25, err.Value)
	assert.Equal(t, 1, err.Min)
	assert.Equal(t, 20, err.Max)
	require.NoError(t, err.Cause)
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("notes", "antar\nsore", 0, 10)

	assert.Contains(t, err.Error(), "antar sore")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("load order: %w", errs.NewObjectNotFoundError("order", "ORD1"))

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
	assert.Equal(t, "ORD1", notFound.ID)

	var stale *errs.VersionIsInvalidError
	assert.False(t, errors.As(wrapped, &stale))
}
