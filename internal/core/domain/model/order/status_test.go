package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StringAndLabel(t *testing.T) {
	tests := []struct {
		status order.Status
		name   string
		label  string
	}{
		{status: order.Pending, name: "pending", label: "Dalam Proses"},
		{status: order.Processing, name: "processing", label: "Diproses"},
		{status: order.Completed, name: "completed", label: "Selesai"},
		{status: order.Cancelled, name: "cancelled", label: "Dibatalkan"},
		{status: order.Unknown, name: "unknown", label: "Tidak Diketahui"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.label, tt.status.Label())
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus(" Processing ")
	require.NoError(t, err)
	assert.Equal(t, order.Processing, s)

	_, err = order.ParseStatus("Dalam Proses")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("unknown")
	require.Error(t, err)
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Processing, order.Completed, order.Cancelled} {
		require.NoError(t, s.Validate())
	}
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)
	accept := func(s order.Status) (order.Status, error) { return s.Accept() }
	complete := func(s order.Status) (order.Status, error) { return s.Complete() }
	cancel := func(s order.Status) (order.Status, error) { return s.Cancel() }

	tests := []struct {
		name    string
		from    order.Status
		apply   transition
		want    order.Status
		wantErr bool
	}{
		{name: "accept pending", from: order.Pending, apply: accept, want: order.Processing},
		{name: "accept processing again", from: order.Processing, apply: accept, want: order.Processing},
		{name: "accept completed", from: order.Completed, apply: accept, wantErr: true},
		{name: "accept cancelled", from: order.Cancelled, apply: accept, wantErr: true},
		{name: "complete processing", from: order.Processing, apply: complete, want: order.Completed},
		{name: "complete pending", from: order.Pending, apply: complete, wantErr: true},
		{name: "complete completed", from: order.Completed, apply: complete, wantErr: true},
		{name: "complete cancelled", from: order.Cancelled, apply: complete, wantErr: true},
		{name: "cancel pending", from: order.Pending, apply: cancel, want: order.Cancelled},
		{name: "cancel processing", from: order.Processing, apply: cancel, want: order.Cancelled},
		{name: "cancel completed", from: order.Completed, apply: cancel, wantErr: true},
		{name: "cancel cancelled", from: order.Cancelled, apply: cancel, wantErr: true},
		{name: "cancel unknown", from: order.Unknown, apply: cancel, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("dispatches to named transitions", func(t *testing.T) {
		got, err := order.Pending.TransitionTo(order.Processing)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, got)

		_, err = order.Pending.TransitionTo(order.Completed)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("pending is a no-op only on pending", func(t *testing.T) {
		got, err := order.Pending.TransitionTo(order.Pending)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, got)

		_, err = order.Processing.TransitionTo(order.Pending)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown target is a validation error", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}
