package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, v := range []int64{0, 1, 5000, 1_000_000} {
			m, err := kernel.MoneyFromInt(v)

			require.NoError(t, err)
			require.NoError(t, m.Validate())
			assert.True(t, m.Amount().Equal(decimal.NewFromInt(v)))
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney(5000)

	assert.True(t, price.Times(2).IsEqual(kernel.MustMoney(10000)))
	assert.True(t, price.Add(kernel.MustMoney(2000)).IsEqual(kernel.MustMoney(7000)))
	assert.True(t, kernel.ZeroMoney().Add(price).IsEqual(price))
	require.NoError(t, price.Times(3).Validate())
	assert.InDelta(t, 15000.0, price.Times(3).Float64(), 0.001)
}

func TestMoney_WithinTolerance(t *testing.T) {
	computed := kernel.MustMoney(12000)

	tests := []struct {
		name      string
		submitted decimal.Decimal
		want      bool
	}{
		{name: "exact", submitted: decimal.NewFromInt(12000), want: true},
		{name: "one above", submitted: decimal.NewFromInt(12001), want: true},
		{name: "one below", submitted: decimal.NewFromInt(11999), want: true},
		{name: "fraction within", submitted: decimal.RequireFromString("12000.75"), want: true},
		{name: "just over", submitted: decimal.RequireFromString("12001.01"), want: false},
		{name: "far off", submitted: decimal.NewFromInt(20000), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitted, err := kernel.NewMoney(tt.submitted)
			require.NoError(t, err)

			assert.Equal(t, tt.want, submitted.WithinTolerance(computed))
		})
	}
}

func TestReconcile(t *testing.T) {
	require.NoError(t, kernel.Reconcile("totalAmount", kernel.MustMoney(12000), kernel.MustMoney(12000)))

	err := kernel.Reconcile("totalAmount", kernel.MustMoney(20000), kernel.MustMoney(12000))

	require.ErrorIs(t, err, errs.ErrTotalMismatch)
	var mismatch *errs.TotalMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "20000", mismatch.Submitted)
	assert.Equal(t, "12000", mismatch.Calculated)
}
