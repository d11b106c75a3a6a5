package services

import (
	"errors"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"
)

// ErrItemSizeMismatch is returned when the inventory item handed to a service
// is not the item for the order's size.
var ErrItemSizeMismatch = errors.New("inventory item size does not match the order size")

// OrderPlacement creates orders.
//
// Business rules:
//   - The unit price comes from the inventory item for the size, or from the
//     fallback table when there is none
//   - The total is price × quantity, computed once by order.NewOrder
//   - When an item exists the order quantity is deducted from it; if the
//     stock is insufficient nothing is created
//
// Example usage:
//
//	placement := services.NewOrderPlacement(services.NewPricing())
//	o, err := placement.Place(services.PlaceOrderParams{...}, item)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // not enough tubes of that size
//	}
type OrderPlacement struct {
	pricing Pricing
}

func NewOrderPlacement(pricing Pricing) OrderPlacement {
	return OrderPlacement{pricing: pricing}
}

// PlaceOrderParams carries the validated input of a new order.
type PlaceOrderParams struct {
	OrderID      kernel.UUID
	Customer     order.Customer
	Size         kernel.Size
	Quantity     int
	DeliveryMode order.DeliveryMode
	CreatedBy    *kernel.UUID
}

// Place builds a Pending order and deducts its quantity from item.
// item may be nil when no inventory exists for the size.
func (p OrderPlacement) Place(params PlaceOrderParams, item *inventory.Item) (*order.Order, error) {
	if item != nil {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.Size().IsEqual(params.Size) {
			return nil, errs.NewValueIsInvalidErrorWithCause("inventory item", ErrItemSizeMismatch)
		}
	}

	price := p.pricing.UnitPrice(params.Size, item)
	o, err := order.NewOrder(
		params.OrderID,
		params.Customer,
		params.Size,
		params.Quantity,
		params.DeliveryMode,
		price,
		params.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if item == nil || item.IsArchived() {
		return o, nil
	}

	if err = item.AdjustQuantity(-o.Quantity()); err != nil {
		return nil, err
	}
	o.MarkStockDeducted()

	return o, nil
}
