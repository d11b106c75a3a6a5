package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeInventoryPriceCommandIsNotConstructed = errors.New(
	"ChangeInventoryPriceCommand must be created via NewChangeInventoryPriceCommand constructor",
)

// ChangeInventoryPriceCommand sets the unit price used for future orders of
// the item's size. Existing orders keep their snapshot.
type ChangeInventoryPriceCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	itemID  kernel.UUID
	price   decimal.Decimal

	guard guard.ConstructorGuard
}

func NewChangeInventoryPriceCommand(
	actorID, itemID kernel.UUID,
	price decimal.Decimal,
) (ChangeInventoryPriceCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := itemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if price.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return ChangeInventoryPriceCommand{}, err
	}

	return ChangeInventoryPriceCommand{
		actorID: actorID,
		itemID:  itemID,
		price:   price,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeInventoryPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeInventoryPriceCommandIsNotConstructed)
}

func (c ChangeInventoryPriceCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ChangeInventoryPriceCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c ChangeInventoryPriceCommand) Price() decimal.Decimal {
	return c.price
}
