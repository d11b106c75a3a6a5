package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderInput is the raw order form.
type CreateOrderInput struct {
	CustomerName  string
	Address       string
	ContactNumber string
	Size          string
	Quantity      int
	DeliveryMode  string
}

// CreateOrderCommand places a new order on behalf of the acting user.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(actorID, orderID, CreateOrderInput{
//	    CustomerName:  "Ana Reyes",
//	    Address:       "12 Mabini St",
//	    ContactNumber: "0917 000 0000",
//	    Size:          "Medium",
//	    Quantity:      3,
//	    DeliveryMode:  "deliver",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	orderID      kernel.UUID
	customer     order.Customer
	size         kernel.Size
	quantity     int
	deliveryMode order.DeliveryMode

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the whole form at once; the returned error
// joins every problem found.
func NewCreateOrderCommand(actorID, orderID kernel.UUID, input CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
		cmd.setCustomer(input.CustomerName, input.Address, input.ContactNumber),
		cmd.setSize(input.Size),
		cmd.setQuantity(input.Quantity),
		cmd.setDeliveryMode(input.DeliveryMode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Size() kernel.Size {
	return c.size
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c CreateOrderCommand) DeliveryMode() order.DeliveryMode {
	return c.deliveryMode
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, address, contactNumber string) error {
	customer, err := order.NewCustomer(name, address, contactNumber)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setSize(raw string) error {
	size, err := kernel.NewSize(raw)
	if err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDeliveryMode(raw string) error {
	mode, err := order.ParseDeliveryMode(raw)
	if err != nil {
		return err
	}
	c.deliveryMode = mode
	return nil
}
