package commands

import (
	"context"
	"fmt"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"
)

// SetStockCommandHandler overwrites the quantity of an item.
type SetStockCommandHandler struct {
	uowFactory InventoryUoWFactory
	notifier   Notifier
}

func NewSetStockCommandHandler(uowFactory InventoryUoWFactory, notifier Notifier) SetStockCommandHandler {
	return SetStockCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h SetStockCommandHandler) Handle(ctx context.Context, cmd SetStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var before int
	item, err := updateInventoryItem(ctx, h.uowFactory, cmd.ItemID(), func(item *inventory.Item) error {
		before = item.Quantity()
		return item.SetQuantity(cmd.Quantity())
	})
	if err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.InventoryRestocked, activity.SubjectInventory, item.ID(),
		fmt.Sprintf("set %s stock to %d", item.Size().String(), item.Quantity()),
		map[string]any{
			"before": before,
			"after":  item.Quantity(),
			"status": item.Status().String(),
		},
	)

	return nil
}
