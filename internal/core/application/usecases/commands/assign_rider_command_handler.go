package commands

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/pkg/errs"
)

// ErrRiderCannotDeliver is the cause returned when the chosen user is not an
// active employee.
var ErrRiderCannotDeliver = errors.New("rider must be an active employee")

// AssignRiderCommandHandler sets the delivery rider of an order.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

func NewAssignRiderCommandHandler(uowFactory UoWFactory, notifier Notifier) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle fails with a ValueIsInvalidError when the rider cannot deliver or
// the order is terminal, archived or a pick-up.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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

	rider, err := uow.UserRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if !rider.CanDeliver() {
		return errs.NewValueIsInvalidErrorWithCause("rider", ErrRiderCannotDeliver)
	}

	if err = o.AssignRider(rider.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.OrderRiderAssigned, activity.SubjectOrder, o.ID(),
		"assigned rider "+rider.Name(),
		map[string]any{"rider_id": rider.ID().String()},
	)

	return nil
}
