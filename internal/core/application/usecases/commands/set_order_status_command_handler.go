package commands

import (
	"context"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/core/domain/services"
)

// SetOrderStatusCommandHandler runs the order lifecycle: cancelling gives
// the stock back, reactivating a cancelled order takes it again.
//
// Example:
//
//	cmd, err := NewSetOrderStatusCommand(actorID, user.Admin, orderID, "cancelled")
//	if err != nil {
//	    return err // errs.ErrInvalidTransition for unknown statuses
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    // reactivation needs more stock than is on hand; the order stays cancelled
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the transition table has no such move
//	}
type SetOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
	lifecycle  services.OrderLifecycle
}

func NewSetOrderStatusCommandHandler(uowFactory UoWFactory, notifier Notifier) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

// Handle applies the move. Setting the current status succeeds without
// writing, logging or publishing anything.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	inventoryRepo := uow.InventoryRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.ActorRole() == user.Employee && !o.IsAssignedTo(cmd.ActorID()) {
		return ErrOrderNotAssignedToActor
	}

	item, err := findItemForSize(ctx, inventoryRepo, o.Size())
	if err != nil {
		return err
	}

	tr, err := h.lifecycle.SetStatus(o, item, cmd.Status())
	if err != nil {
		return err
	}
	if !tr.Changed {
		return nil
	}

	if tr.StockDelta != 0 {
		if err = inventoryRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.OrderStatusChanged, activity.SubjectOrder, o.ID(),
		"order moved from "+tr.From.String()+" to "+tr.To.String(),
		map[string]any{
			"from":        tr.From.String(),
			"to":          tr.To.String(),
			"stock_delta": tr.StockDelta,
		},
	)
	h.notifier.OrderStatusChanged(ctx, o, tr.From)

	return nil
}
