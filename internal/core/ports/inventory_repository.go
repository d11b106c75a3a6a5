package ports

import (
	"context"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items.
// Reads inside a transaction lock the returned rows.
type InventoryRepository interface {
	Add(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error

	// Get retrieves an item by id, archived or not.
	// Returns errs.ObjectNotFoundError when no item has this id.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// FindBySize returns the non-archived item for a normalized size.
	// Returns errs.ObjectNotFoundError when the size is not stocked.
	FindBySize(ctx context.Context, size kernel.Size) (*inventory.Item, error)

	// ListByStatus returns the non-archived items in any of the statuses,
	// lowest quantity first.
	ListByStatus(ctx context.Context, statuses ...inventory.StockStatus) ([]*inventory.Item, error)
}
