package services_test

import (
	"testing"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/services"
	"icetube/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacement_Place(t *testing.T) {
	placement := services.NewOrderPlacement(services.NewPricing())

	t.Run("prices from inventory and deducts stock", func(t *testing.T) {
		item := stock(t, "medium", 110, 20)

		o, err := placement.Place(placeParams(t, "Medium", 5), item)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, decimal.NewFromInt(110).Equal(o.Price()))
		assert.True(t, decimal.NewFromInt(550).Equal(o.Total()))
		assert.True(t, o.StockDeducted())
		assert.Equal(t, 15, item.Quantity())
		assert.Equal(t, inventory.Available, item.Status())
	})

	t.Run("uses the fallback table without inventory", func(t *testing.T) {
		o, err := placement.Place(placeParams(t, "extra small", 3), nil)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(40).Equal(o.Price()))
		assert.True(t, decimal.NewFromInt(120).Equal(o.Total()))
		assert.False(t, o.StockDeducted())
	})

	t.Run("unknown size defaults to 100", func(t *testing.T) {
		o, err := placement.Place(placeParams(t, "jumbo", 2), nil)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(o.Price()))
		assert.True(t, decimal.NewFromInt(200).Equal(o.Total()))
	})

	t.Run("insufficient stock creates nothing", func(t *testing.T) {
		item := stock(t, "large", 150, 2)

		o, err := placement.Place(placeParams(t, "large", 5), item)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Nil(t, o)
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("invalid input leaves stock alone", func(t *testing.T) {
		item := stock(t, "large", 150, 20)

		_, err := placement.Place(placeParams(t, "large", 0), item)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 20, item.Quantity())
	})

	t.Run("rejects an item of another size", func(t *testing.T) {
		item := stock(t, "small", 50, 20)

		_, err := placement.Place(placeParams(t, "large", 1), item)

		require.ErrorIs(t, err, services.ErrItemSizeMismatch)
		assert.Equal(t, 20, item.Quantity())
	})

	t.Run("total stays fixed after a price change", func(t *testing.T) {
		item := stock(t, "medium", 100, 20)
		o, err := placement.Place(placeParams(t, "medium", 2), item)
		require.NoError(t, err)

		require.NoError(t, item.ChangePrice(decimal.NewFromInt(500)))

		assert.True(t, decimal.NewFromInt(200).Equal(o.Total()))
	})
}
