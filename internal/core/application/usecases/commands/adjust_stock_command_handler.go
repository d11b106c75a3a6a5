package commands

import (
	"context"
	"fmt"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"
)

// AdjustStockCommandHandler applies a manual stock adjustment.
// A deduction larger than the quantity on hand fails with
// errs.InsufficientStockError and changes nothing.
type AdjustStockCommandHandler struct {
	uowFactory InventoryUoWFactory
	notifier   Notifier
}

func NewAdjustStockCommandHandler(uowFactory InventoryUoWFactory, notifier Notifier) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var before int
	item, err := updateInventoryItem(ctx, h.uowFactory, cmd.ItemID(), func(item *inventory.Item) error {
		before = item.Quantity()
		return item.AdjustQuantity(cmd.Delta())
	})
	if err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.InventoryAdjusted, activity.SubjectInventory, item.ID(),
		fmt.Sprintf("adjusted %s stock by %+d", item.Size().String(), cmd.Delta()),
		map[string]any{
			"delta":  cmd.Delta(),
			"before": before,
			"after":  item.Quantity(),
			"status": item.Status().String(),
		},
	)

	return nil
}
