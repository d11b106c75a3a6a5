package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand hands an order to a delivery employee.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(actorID, orderID, riderID kernel.UUID) (AssignRiderCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := riderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("rider", err))
	}
	if err := errors.Join(errList...); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		actorID: actorID,
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
