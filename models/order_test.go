package models

import (
	"testing"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderConfirmed, OrderProcessing, true},
		{OrderProcessing, OrderShipped, true},
		{OrderShipped, OrderCancelled, false},
		{OrderShipped, OrderDelivered, true},
		{OrderDelivered, OrderRefunded, true},
		{OrderCancelled, OrderPending, false},
		{OrderRefunded, OrderDelivered, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrder_ApplyStatus(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("confirm stamps confirmed_at", func(t *testing.T) {
		o := Order{Status: OrderPending}
		require.NoError(t, o.ApplyStatus(OrderConfirmed, nil, now))
		assert.Equal(t, OrderConfirmed, o.Status)
		require.NotNil(t, o.ConfirmedAt)
		assert.True(t, o.ConfirmedAt.Equal(now))
	})

	t.Run("ship and deliver stamp their timestamps", func(t *testing.T) {
		o := Order{Status: OrderProcessing}
		require.NoError(t, o.ApplyStatus(OrderShipped, nil, now))
		require.NotNil(t, o.ShippedAt)
		require.NoError(t, o.ApplyStatus(OrderDelivered, nil, now.Add(time.Hour)))
		require.NotNil(t, o.DeliveredAt)
		assert.Equal(t, OrderDelivered, o.Status)
	})

	t.Run("cancel without notes is rejected", func(t *testing.T) {
		o := Order{Status: OrderConfirmed}
		err := o.ApplyStatus(OrderCancelled, strPtr(""), now)
		require.Error(t, err)
		assert.Equal(t, 400, utils.StatusCode(err))
		assert.Equal(t, OrderConfirmed, o.Status)
	})

	t.Run("cancel with notes", func(t *testing.T) {
		o := Order{Status: OrderPending}
		require.NoError(t, o.ApplyStatus(OrderCancelled, strPtr("customer request"), now))
		assert.Equal(t, OrderCancelled, o.Status)
		require.NotNil(t, o.AdminNotes)
		assert.Equal(t, "customer request", *o.AdminNotes)
		assert.NotNil(t, o.CancelledAt)
	})

	t.Run("illegal jump", func(t *testing.T) {
		o := Order{Status: OrderPending}
		err := o.ApplyStatus(OrderDelivered, nil, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot change order status")
	})

	t.Run("unknown status", func(t *testing.T) {
		o := Order{Status: OrderPending}
		err := o.ApplyStatus("lost", nil, now)
		require.Error(t, err)
		assert.Equal(t, 400, utils.StatusCode(err))
	})
}

func TestOrder_Tracking(t *testing.T) {
	o := Order{
		OrderNumber: "STR-20261019-ABCDEF",
		Status:      OrderShipped,
		TotalAmount: 1500,
		Currency:    "INR",
		Items:       []OrderItem{{Quantity: 2}, {Quantity: 1}},
	}

	tr := o.Tracking()
	assert.Equal(t, 3, tr.ItemCount)
	assert.Equal(t, OrderShipped, tr.Status)
	assert.Equal(t, "STR-20261019-ABCDEF", tr.OrderNumber)
}

func TestNewOrderNumber(t *testing.T) {
	n := NewOrderNumber(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, `^STR-20260102-[0-9A-F]{6}$`, n)
}
