package commands

import (
	"context"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"

	"github.com/shopspring/decimal"
)

// ChangeInventoryPriceCommandHandler updates the unit price of an item.
type ChangeInventoryPriceCommandHandler struct {
	uowFactory InventoryUoWFactory
	notifier   Notifier
}

func NewChangeInventoryPriceCommandHandler(
	uowFactory InventoryUoWFactory,
	notifier Notifier,
) ChangeInventoryPriceCommandHandler {
	return ChangeInventoryPriceCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ChangeInventoryPriceCommandHandler) Handle(ctx context.Context, cmd ChangeInventoryPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var before decimal.Decimal
	item, err := updateInventoryItem(ctx, h.uowFactory, cmd.ItemID(), func(item *inventory.Item) error {
		before = item.Price()
		return item.ChangePrice(cmd.Price())
	})
	if err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.InventoryRepriced, activity.SubjectInventory, item.ID(),
		"changed "+item.Size().String()+" price to "+item.Price().StringFixed(2),
		map[string]any{
			"before": before.StringFixed(2),
			"after":  item.Price().StringFixed(2),
		},
	)

	return nil
}
