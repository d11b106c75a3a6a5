package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand soft-deletes a completed or cancelled order.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewArchiveOrderCommand(actorID, orderID kernel.UUID) (ArchiveOrderCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return ArchiveOrderCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

func (c ArchiveOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
