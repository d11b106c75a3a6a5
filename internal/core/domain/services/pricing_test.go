package services_test

import (
	"testing"

	"icetube/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing_UnitPrice(t *testing.T) {
	pricing := services.NewPricing()

	t.Run("inventory price wins over the fallback table", func(t *testing.T) {
		item := stock(t, "medium", 120, 10)

		assert.True(t, decimal.NewFromInt(120).Equal(pricing.UnitPrice(size(t, "medium"), item)))
	})

	t.Run("fallback table", func(t *testing.T) {
		tests := map[string]int64{
			"extra small":  40,
			"Small":        50,
			" medium ":     100,
			"LARGE":        150,
			"extra  large": 200,
			"jumbo":        100,
		}
		for raw, want := range tests {
			got := pricing.UnitPrice(size(t, raw), nil)
			assert.True(t, decimal.NewFromInt(want).Equal(got), "%q: got %s", raw, got)
		}
	})

	t.Run("archived item falls back", func(t *testing.T) {
		item := stock(t, "large", 999, 10)
		require.NoError(t, item.Archive())

		assert.True(t, decimal.NewFromInt(150).Equal(pricing.UnitPrice(size(t, "large"), item)))
	})
}
