package services_test

import (
	"testing"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func size(t *testing.T, raw string) kernel.Size {
	t.Helper()
	s, err := kernel.NewSize(raw)
	require.NoError(t, err)
	return s
}

func stock(t *testing.T, sizeRaw string, price int64, quantity int) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(kernel.NewUUID(), "Ice Tube", size(t, sizeRaw), decimal.NewFromInt(price), quantity)
	require.NoError(t, err)
	return item
}

func placeParams(t *testing.T, sizeRaw string, quantity int) services.PlaceOrderParams {
	t.Helper()
	customer, err := order.NewCustomer("Ana Reyes", "12 Mabini St", "0917 000 0000")
	require.NoError(t, err)
	return services.PlaceOrderParams{
		OrderID:      kernel.NewUUID(),
		Customer:     customer,
		Size:         size(t, sizeRaw),
		Quantity:     quantity,
		DeliveryMode: order.Deliver,
	}
}

func place(t *testing.T, item *inventory.Item, sizeRaw string, quantity int) *order.Order {
	t.Helper()
	o, err := services.NewOrderPlacement(services.NewPricing()).Place(placeParams(t, sizeRaw, quantity), item)
	require.NoError(t, err)
	return o
}
