package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand moves an order to another status. Employees may
// only move orders assigned to them.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	actorRole user.Role
	orderID   kernel.UUID
	status    order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand parses the target status. A string that is not a
// status fails with errs.InvalidTransitionError, like a disallowed move.
func NewSetOrderStatusCommand(
	actorID kernel.UUID,
	actorRole user.Role,
	orderID kernel.UUID,
	status string,
) (SetOrderStatusCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := actorRole.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}

	target, err := order.ParseStatus(status)
	if err != nil {
		errList = append(errList, errs.NewInvalidTransitionErrorWithCause("current", status, err))
	}

	if err = errors.Join(errList...); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		actorID:   actorID,
		actorRole: actorRole,
		orderID:   orderID,
		status:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c SetOrderStatusCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}
