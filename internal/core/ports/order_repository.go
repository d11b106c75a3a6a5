// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work, the activity logger and the event
// publisher.
package ports

import (
	"context"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists every field of an existing order. The stored total is
	// written back unchanged because the aggregate never recomputes it.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order, archived or not. Inside a transaction the row
	// is locked (SELECT ... FOR UPDATE) until commit or rollback.
	// Returns errs.ObjectNotFoundError when no order has this id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
