package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero = errors.New("delta must not be zero")
)

// AdjustStockCommand moves the quantity of an item by delta: positive to
// restock, negative to write stock off.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	itemID  kernel.UUID
	delta   int

	guard guard.ConstructorGuard
}

func NewAdjustStockCommand(actorID, itemID kernel.UUID, delta int) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := itemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if delta == 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("delta", ErrDeltaIsZero))
	}
	if err := errors.Join(errList...); err != nil {
		return AdjustStockCommand{}, err
	}

	cmd.actorID = actorID
	cmd.itemID = itemID
	cmd.delta = delta
	return cmd, nil
}

func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

func (c AdjustStockCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c AdjustStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AdjustStockCommand) Delta() int {
	return c.delta
}
