package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberGenerator_Next(t *testing.T) {
	at := time.UnixMilli(1759309200000)

	t.Run("pads the random suffix", func(t *testing.T) {
		gen := order.NewNumberGeneratorWith(func() time.Time { return at }, func(int) int { return 7 })

		assert.Equal(t, order.Number("ORD1759309200000007"), gen.Next())
	})

	t.Run("asks for a suffix below 1000", func(t *testing.T) {
		var bound int
		gen := order.NewNumberGeneratorWith(func() time.Time { return at }, func(n int) int { bound = n; return 999 })

		assert.Equal(t, order.Number("ORD1759309200000999"), gen.Next())
		assert.Equal(t, 1000, bound)
	})

	t.Run("default generator yields valid numbers", func(t *testing.T) {
		gen := order.NewNumberGenerator()

		_, err := order.NewNumber(gen.Next().String())

		require.NoError(t, err)
	})
}

func TestNewNumber(t *testing.T) {
	_, err := order.NewNumber("ORD1759309200000042")
	require.NoError(t, err)

	for _, bad := range []string{"", "ORD", "ORD12", "INV1759309200000042", "ORD17593092000x0042"} {
		_, err = order.NewNumber(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}
