package services

import (
	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DefaultFallbackPrice is used for sizes that have neither an inventory item
// nor an entry in the fallback table.
var DefaultFallbackPrice = decimal.NewFromInt(100)

// fallbackPrices is keyed by normalized size.
func fallbackPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"extra small": decimal.NewFromInt(40),
		"small":       decimal.NewFromInt(50),
		"medium":      decimal.NewFromInt(100),
		"large":       decimal.NewFromInt(150),
		"extra large": decimal.NewFromInt(200),
	}
}

// Pricing resolves the unit price of a new order.
type Pricing struct{}

func NewPricing() Pricing {
	return Pricing{}
}

// UnitPrice returns the price of item when there is one (archived items are
// ignored), otherwise the fallback price for size.
func (Pricing) UnitPrice(size kernel.Size, item *inventory.Item) decimal.Decimal {
	if item != nil && !item.IsArchived() {
		return item.Price()
	}
	return FallbackPrice(size)
}

// FallbackPrice looks size up in the fallback table.
func FallbackPrice(size kernel.Size) decimal.Decimal {
	if price, ok := fallbackPrices()[size.String()]; ok {
		return price
	}
	return DefaultFallbackPrice
}
