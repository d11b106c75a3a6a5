package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrArchiveInventoryItemCommandIsNotConstructed = errors.New(
	"ArchiveInventoryItemCommand must be created via NewArchiveInventoryItemCommand constructor",
)

// ArchiveInventoryItemCommand retires an item. Its size can then be stocked
// again by a new item.
type ArchiveInventoryItemCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewArchiveInventoryItemCommand(actorID, itemID kernel.UUID) (ArchiveInventoryItemCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := itemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return ArchiveInventoryItemCommand{}, err
	}

	return ArchiveInventoryItemCommand{
		actorID: actorID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrArchiveInventoryItemCommandIsNotConstructed)
}

func (c ArchiveInventoryItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ArchiveInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
