package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrSetStockCommandIsNotConstructed = errors.New(
	"SetStockCommand must be created via NewSetStockCommand constructor",
)

// SetStockCommand overwrites the quantity of an item after a stock count.
type SetStockCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewSetStockCommand(actorID, itemID kernel.UUID, quantity int) (SetStockCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := itemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if quantity < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return SetStockCommand{}, err
	}

	return SetStockCommand{
		actorID:  actorID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetStockCommand) Validate() error {
	return c.guard.Validate(ErrSetStockCommandIsNotConstructed)
}

func (c SetStockCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c SetStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c SetStockCommand) Quantity() int {
	return c.quantity
}
