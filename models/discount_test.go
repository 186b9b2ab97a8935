package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscount_Apply(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	minAmount := 1000.0
	maxUses := 5

	tests := []struct {
		name     string
		discount Discount
		subtotal float64
		want     float64
		wantErr  string
	}{
		{
			name:     "percentage",
			discount: Discount{Type: DiscountPercentage, Value: 10, IsActive: true},
			subtotal: 1999,
			want:     199.9,
		},
		{
			name:     "fixed capped at subtotal",
			discount: Discount{Type: DiscountFixed, Value: 500, IsActive: true},
			subtotal: 300,
			want:     300,
		},
		{
			name:     "inactive",
			discount: Discount{Type: DiscountFixed, Value: 50},
			subtotal: 300,
			wantErr:  "not active",
		},
		{
			name:     "not started",
			discount: Discount{Type: DiscountFixed, Value: 50, IsActive: true, StartsAt: &future},
			subtotal: 300,
			wantErr:  "not active yet",
		},
		{
			name:     "expired",
			discount: Discount{Type: DiscountFixed, Value: 50, IsActive: true, EndsAt: &past},
			subtotal: 300,
			wantErr:  "expired",
		},
		{
			name:     "usage limit",
			discount: Discount{Type: DiscountFixed, Value: 50, IsActive: true, MaxUses: &maxUses, UsedCount: 5},
			subtotal: 300,
			wantErr:  "usage limit",
		},
		{
			name:     "below minimum",
			discount: Discount{Type: DiscountPercentage, Value: 20, IsActive: true, MinOrderAmount: &minAmount},
			subtotal: 999.99,
			wantErr:  "minimum amount",
		},
		{
			name:     "at minimum",
			discount: Discount{Type: DiscountPercentage, Value: 20, IsActive: true, MinOrderAmount: &minAmount},
			subtotal: 1000,
			want:     200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.discount.Apply(tt.subtotal, now)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestDiscountRequest_ToModel(t *testing.T) {
	t.Run("normalizes code", func(t *testing.T) {
		d, err := DiscountRequest{Code: "  fest10 ", Type: DiscountPercentage, Value: 10}.ToModel()
		require.NoError(t, err)
		assert.Equal(t, "FEST10", d.Code)
		assert.True(t, d.IsActive)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		_, err := DiscountRequest{Code: "BIG", Type: DiscountPercentage, Value: 120}.ToModel()
		assert.Error(t, err)
	})

	t.Run("fixed must be positive", func(t *testing.T) {
		_, err := DiscountRequest{Code: "NEG", Type: DiscountFixed, Value: -5}.ToModel()
		assert.Error(t, err)
	})

	t.Run("window reversed", func(t *testing.T) {
		start := time.Now()
		end := start.Add(-time.Hour)
		_, err := DiscountRequest{Code: "WIN", Type: DiscountFixed, Value: 5, StartsAt: &start, EndsAt: &end}.ToModel()
		assert.Error(t, err)
	})
}
