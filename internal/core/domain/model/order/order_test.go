package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

const validNumber = order.Number("ORD1759309200000042")

func ironingLine(t *testing.T) catalog.ServiceLine {
	t.Helper()
	kaos, err := catalog.NewLineItem("Kaos", 2, kernel.MustMoney(5000))
	require.NoError(t, err)
	line, err := catalog.NewServiceLine(catalog.Ironing, []catalog.LineItem{kaos})
	require.NoError(t, err)
	return line
}

func validDraft(t *testing.T) order.Draft {
	t.Helper()
	return order.Draft{
		UserID:         kernel.NewUUID(),
		Items:          []catalog.ServiceLine{ironingLine(t)},
		DeliveryMethod: order.Direct,
		PaymentMethod:  order.Cash,
		DeliveryFee:    kernel.MustMoney(2000),
		TotalAmount:    kernel.MustMoney(12000),
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order", func(t *testing.T) {
		draft := validDraft(t)
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, validNumber, draft, created)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, validNumber, o.Number())
		assert.True(t, o.IsOwnedBy(draft.UserID))
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.Subtotal().IsEqual(kernel.MustMoney(10000)))
		assert.True(t, o.TotalAmount().IsEqual(kernel.MustMoney(12000)))
		assert.Equal(t, created.Add(72*time.Hour), o.EstimatedDoneDate())
		assert.Equal(t, created, o.CreatedAt())
	})

	t.Run("should keep a submitted total within tolerance unchanged", func(t *testing.T) {
		draft := validDraft(t)
		draft.TotalAmount = kernel.MustMoney(12001)

		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.NoError(t, err)
		assert.True(t, o.TotalAmount().IsEqual(kernel.MustMoney(12001)))
	})

	t.Run("should reject a mismatched total", func(t *testing.T) {
		draft := validDraft(t)
		draft.TotalAmount = kernel.MustMoney(20000)

		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.ErrorIs(t, err, errs.ErrTotalMismatch)
		assert.Nil(t, o)
	})

	t.Run("should reject a mismatched subtotal", func(t *testing.T) {
		draft := validDraft(t)
		wrong := kernel.MustMoney(15000)
		draft.Subtotal = &wrong

		_, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.ErrorIs(t, err, errs.ErrTotalMismatch)
		assert.Contains(t, err.Error(), "subtotal")
	})

	t.Run("should reconcile against submitted line totals", func(t *testing.T) {
		draft := validDraft(t)
		draft.Items = append(draft.Items, ironingLine(t))
		itemsTotal := kernel.MustMoney(20002)
		draft.ItemsTotal = &itemsTotal

		draft.TotalAmount = kernel.MustMoney(22000)
		_, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)
		require.ErrorIs(t, err, errs.ErrTotalMismatch)

		draft.TotalAmount = kernel.MustMoney(22002)
		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)
		require.NoError(t, err)
		assert.True(t, o.Subtotal().IsEqual(kernel.MustMoney(20000)))
	})

	t.Run("pickup requires an address", func(t *testing.T) {
		draft := validDraft(t)
		draft.DeliveryMethod = order.Pickup
		draft.DeliveryAddress = "   "

		_, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("pickup keeps the trimmed address", func(t *testing.T) {
		draft := validDraft(t)
		draft.DeliveryMethod = order.Pickup
		draft.DeliveryAddress = " Jl. Merdeka 10 "

		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.NoError(t, err)
		assert.Equal(t, "Jl. Merdeka 10", o.DeliveryAddress())
	})

	t.Run("direct drops the address", func(t *testing.T) {
		draft := validDraft(t)
		draft.DeliveryAddress = "Jl. Merdeka 10"

		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.NoError(t, err)
		assert.Empty(t, o.DeliveryAddress())
	})

	t.Run("should honour a requested done date", func(t *testing.T) {
		draft := validDraft(t)
		done := created.Add(24 * time.Hour)
		draft.EstimatedDoneDate = &done

		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)

		require.NoError(t, err)
		assert.Equal(t, done, o.EstimatedDoneDate())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "bad", order.Draft{}, created)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "deliveryMethod")
		assert.Contains(t, err.Error(), "paymentMethod")
		assert.Contains(t, err.Error(), "totalAmount")
		assert.NotErrorIs(t, err, errs.ErrTotalMismatch)
	})

	t.Run("items are a snapshot", func(t *testing.T) {
		draft := validDraft(t)
		o, err := order.NewOrder(kernel.NewUUID(), validNumber, draft, created)
		require.NoError(t, err)

		draft.Items[0] = catalog.ServiceLine{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	later := created.Add(time.Hour)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), validNumber, validDraft(t), created)
		require.NoError(t, err)
		return o
	}

	t.Run("accept then complete then cancel", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Accept(later))
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, later, o.UpdatedAt())

		require.NoError(t, o.Complete(later))
		assert.Equal(t, order.Completed, o.Status())

		err := o.Cancel(later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancel from pending", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel(later))
		assert.Equal(t, order.Cancelled, o.Status())
		require.ErrorIs(t, o.Cancel(later), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Accept(later), errs.ErrInvalidTransition)
	})

	t.Run("complete requires processing", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.Complete(later), errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, created, o.UpdatedAt())
	})

	t.Run("set status reports changes", func(t *testing.T) {
		o := newOrder(t)

		changed, err := o.SetStatus(order.Pending, later)
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = o.SetStatus(order.Processing, later)
		require.NoError(t, err)
		assert.True(t, changed)

		_, err = o.SetStatus(order.Pending, later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_WithNumber(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), validNumber, validDraft(t), created)
	require.NoError(t, err)

	renumbered, err := o.WithNumber("ORD1759309200000777")

	require.NoError(t, err)
	assert.Equal(t, order.Number("ORD1759309200000777"), renumbered.Number())
	assert.Equal(t, validNumber, o.Number())
	assert.True(t, renumbered.IsEqual(o))

	_, err = o.WithNumber("nope")
	require.Error(t, err)
}

func TestRestoreOrder(t *testing.T) {
	snapshot := order.Snapshot{
		ID:                kernel.NewUUID(),
		Number:            validNumber,
		UserID:            kernel.NewUUID(),
		Items:             []catalog.ServiceLine{ironingLine(t)},
		Subtotal:          kernel.MustMoney(10000),
		DeliveryFee:       kernel.MustMoney(2000),
		TotalAmount:       kernel.MustMoney(12000),
		DeliveryMethod:    order.Pickup,
		PaymentMethod:     order.Dana,
		DeliveryAddress:   "Jl. Merdeka 10",
		Status:            order.Processing,
		EstimatedDoneDate: created.Add(72 * time.Hour),
		CreatedAt:         created,
		UpdatedAt:         created,
		Version:           4,
	}

	t.Run("should restore the stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(snapshot)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, order.Dana, o.PaymentMethod())
		assert.Equal(t, int64(4), o.Version())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		broken := snapshot
		broken.Status = order.Unknown

		_, err := order.RestoreOrder(broken)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
