package commands

import (
	"context"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"
)

type ArchiveInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
	notifier   Notifier
}

func NewArchiveInventoryItemCommandHandler(
	uowFactory InventoryUoWFactory,
	notifier Notifier,
) ArchiveInventoryItemCommandHandler {
	return ArchiveInventoryItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ArchiveInventoryItemCommandHandler) Handle(ctx context.Context, cmd ArchiveInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := updateInventoryItem(ctx, h.uowFactory, cmd.ItemID(), func(item *inventory.Item) error {
		return item.Archive()
	})
	if err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.InventoryArchived, activity.SubjectInventory, item.ID(),
		"archived "+item.Size().String()+" stock",
		map[string]any{"quantity": item.Quantity()},
	)

	return nil
}
