package order

import (
	"time"

	"icetube/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// StatusChanged is raised after an order's status change is committed.
// Order creation is reported with From == Unknown.
type StatusChanged struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	Quantity   int
	Size       string
	Total      decimal.Decimal
	OccurredAt time.Time
}

// NewStatusChanged describes the move of o from the given status to its
// current one.
func NewStatusChanged(o *Order, from Status) StatusChanged {
	return StatusChanged{
		OrderID:    o.ID(),
		From:       from,
		To:         o.Status(),
		Quantity:   o.Quantity(),
		Size:       o.Size().String(),
		Total:      o.Total(),
		OccurredAt: time.Now().UTC(),
	}
}
