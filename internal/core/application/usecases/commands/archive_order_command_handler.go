package commands

import (
	"context"

	"icetube/internal/core/domain/model/activity"
)

type ArchiveOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

func NewArchiveOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) error {
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

	if err = o.Archive(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.OrderArchived, activity.SubjectOrder, o.ID(),
		"archived "+o.Status().String()+" order",
		map[string]any{"status": o.Status().String()},
	)

	return nil
}
