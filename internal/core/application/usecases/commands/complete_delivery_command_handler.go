package commands

import (
	"context"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler attaches the delivery photo and completes
// the order. Only the assigned rider may complete it.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
	lifecycle  services.OrderLifecycle
}

func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory, notifier Notifier) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsAssignedTo(cmd.RiderID()) {
		return ErrOrderNotAssignedToActor
	}

	if err = o.AttachDeliveryPhoto(cmd.PhotoRef()); err != nil {
		return err
	}

	// Only active orders accept a photo, so this move never touches stock.
	tr, err := h.lifecycle.SetStatus(o, nil, order.Completed)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.RiderID(), activity.OrderDelivered, activity.SubjectOrder, o.ID(),
		"delivered order with photo proof",
		map[string]any{
			"from":  tr.From.String(),
			"photo": o.DeliveryPhoto(),
		},
	)
	h.notifier.OrderStatusChanged(ctx, o, tr.From)

	return nil
}
