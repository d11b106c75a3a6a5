package commands

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/ports"
	"icetube/internal/pkg/errs"
)

// ErrOrderNotAssignedToActor is returned when an employee acts on an order
// assigned to someone else.
var ErrOrderNotAssignedToActor = errors.New("order is not assigned to the acting employee")

// findItemForSize returns the locked, non-archived item for size, or nil
// when the size is not stocked.
func findItemForSize(ctx context.Context, repo ports.InventoryRepository, size kernel.Size) (*inventory.Item, error) {
	item, err := repo.FindBySize(ctx, size)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // no item is a valid outcome
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
