package inventory

import (
	"fmt"

	"icetube/internal/pkg/errs"
)

// CriticalThreshold is the highest quantity still reported as Critical.
const CriticalThreshold = 10

// StockStatus is derived from an item's quantity and is never set directly.
type StockStatus int

const (
	UnknownStockStatus StockStatus = iota
	Available
	Critical
	OutOfStock
)

func getStockStatusStrings() map[StockStatus]string {
	return map[StockStatus]string{
		UnknownStockStatus: "unknown",
		Available:          "available",
		Critical:           "critical",
		OutOfStock:         "out_of_stock",
	}
}

// StatusForQuantity maps a quantity onto its status:
// 0 is OutOfStock, 1..CriticalThreshold is Critical, anything above is Available.
func StatusForQuantity(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity <= CriticalThreshold:
		return Critical
	default:
		return Available
	}
}

// ParseStockStatus reads the persisted form of a status.
func ParseStockStatus(s string) (StockStatus, error) {
	for status, str := range getStockStatusStrings() {
		if status != UnknownStockStatus && str == s {
			return status, nil
		}
	}
	return UnknownStockStatus, errs.NewValueIsInvalidErrorWithCause(
		"stock status",
		fmt.Errorf("%q is not a valid stock status", s),
	)
}

func (s StockStatus) String() string {
	if str, ok := getStockStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
