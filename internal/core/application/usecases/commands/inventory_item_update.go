package commands

import (
	"context"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
)

// updateInventoryItem loads the item with a row lock, applies mutate and
// commits. The item is returned only when the change was committed.
func updateInventoryItem(
	ctx context.Context,
	uowFactory InventoryUoWFactory,
	itemID kernel.UUID,
	mutate func(item *inventory.Item) error,
) (*inventory.Item, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()

	item, err := repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err = mutate(item); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
