package commands

import (
	"errors"
	"strings"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
	"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
)

// CreateInventoryItemCommand registers stock for a size that is not yet
// stocked.
//
// Example:
//
//	cmd, err := NewCreateInventoryItemCommand(adminID, kernel.NewUUID(), "Ice Tube", "Medium",
//	    decimal.NewFromInt(100), 40)
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	itemID      kernel.UUID
	productName string
	size        kernel.Size
	price       decimal.Decimal
	quantity    int

	guard guard.ConstructorGuard
}

func NewCreateInventoryItemCommand(
	actorID kernel.UUID,
	itemID kernel.UUID,
	productName string,
	size string,
	price decimal.Decimal,
	quantity int,
) (CreateInventoryItemCommand, error) {
	cmd := CreateInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
		cmd.setProductName(productName),
		cmd.setSize(size),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

func (c CreateInventoryItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateInventoryItemCommand) ProductName() string {
	return c.productName
}

func (c CreateInventoryItemCommand) Size() kernel.Size {
	return c.size
}

func (c CreateInventoryItemCommand) Price() decimal.Decimal {
	return c.price
}

func (c CreateInventoryItemCommand) Quantity() int {
	return c.quantity
}

func (c *CreateInventoryItemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = actorID
	return nil
}

func (c *CreateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateInventoryItemCommand) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	c.productName = name
	return nil
}

func (c *CreateInventoryItemCommand) setSize(raw string) error {
	size, err := kernel.NewSize(raw)
	if err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *CreateInventoryItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded")
	}
	c.price = price
	return nil
}

func (c *CreateInventoryItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	c.quantity = quantity
	return nil
}
