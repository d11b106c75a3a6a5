package order_test

import (
	"testing"

	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "out_for_delivery", "completed", "cancelled"} {
		status, err := order.ParseStatus(raw)

		require.NoError(t, err, raw)
		assert.Equal(t, raw, status.String())
	}

	for _, raw := range []string{"", "unknown", "Pending", "shipped", "delivered"} {
		_, err := order.ParseStatus(raw)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_CheckTransition(t *testing.T) {
	tests := []struct {
		from   order.Status
		to     order.Status
		effect order.StockEffect
		valid  bool
	}{
		{order.Pending, order.Pending, order.NoStockEffect, true},
		{order.Pending, order.OutForDelivery, order.NoStockEffect, true},
		{order.Pending, order.Completed, order.NoStockEffect, true},
		{order.Pending, order.Cancelled, order.RestoreStock, true},

		{order.OutForDelivery, order.Pending, order.NoStockEffect, false},
		{order.OutForDelivery, order.OutForDelivery, order.NoStockEffect, true},
		{order.OutForDelivery, order.Completed, order.NoStockEffect, true},
		{order.OutForDelivery, order.Cancelled, order.RestoreStock, true},

		{order.Completed, order.Pending, order.NoStockEffect, false},
		{order.Completed, order.OutForDelivery, order.NoStockEffect, false},
		{order.Completed, order.Completed, order.NoStockEffect, true},
		{order.Completed, order.Cancelled, order.NoStockEffect, false},

		{order.Cancelled, order.Pending, order.DeductStock, true},
		{order.Cancelled, order.OutForDelivery, order.DeductStock, true},
		{order.Cancelled, order.Completed, order.DeductStock, true},
		{order.Cancelled, order.Cancelled, order.NoStockEffect, true},

		{order.Pending, order.Unknown, order.NoStockEffect, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			effect, err := tt.from.CheckTransition(tt.to)

			if !tt.valid {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.effect, effect)
		})
	}
}

func TestParseDeliveryMode(t *testing.T) {
	mode, err := order.ParseDeliveryMode("pick_up")
	require.NoError(t, err)
	assert.Equal(t, order.PickUp, mode)

	mode, err = order.ParseDeliveryMode("deliver")
	require.NoError(t, err)
	assert.Equal(t, order.Deliver, mode)

	_, err = order.ParseDeliveryMode("drone")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.UnknownDeliveryMode.Validate(), errs.ErrValueIsInvalid)
}
