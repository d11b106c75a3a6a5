package commands

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/pkg/errs"
)

// ErrSizeAlreadyStocked is the cause returned when a non-archived item for
// the size exists already.
var ErrSizeAlreadyStocked = errors.New("size is already stocked")

// CreateInventoryItemCommandHandler adds a new inventory item.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
	notifier   Notifier
}

func NewCreateInventoryItemCommandHandler(
	uowFactory InventoryUoWFactory,
	notifier Notifier,
) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle rejects a size that already has a non-archived item with a
// ValueIsInvalidError wrapping ErrSizeAlreadyStocked.
func (h CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()

	_, err := repo.FindBySize(ctx, cmd.Size())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("size", ErrSizeAlreadyStocked)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	item, err := inventory.NewItem(cmd.ItemID(), cmd.ProductName(), cmd.Size(), cmd.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.InventoryCreated, activity.SubjectInventory, item.ID(),
		"added stock for size "+item.Size().String(),
		map[string]any{
			"size":     item.Size().String(),
			"price":    item.Price().StringFixed(2),
			"quantity": item.Quantity(),
		},
	)

	return nil
}
