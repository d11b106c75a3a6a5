package commands

import (
	"context"
	"fmt"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. The unit price comes from the
// inventory item of the size (or the fallback table), and the ordered
// quantity is deducted from that item in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    // not enough tubes of that size, nothing was created
//	case err != nil:
//	    return err
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
	placement  services.OrderPlacement
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		placement:  services.NewOrderPlacement(services.NewPricing()),
	}
}

// Handle creates the order in Pending status. On any failure, including
// errs.InsufficientStockError, neither the order nor the stock change is
// persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	inventoryRepo := uow.InventoryRepository()
	item, err := findItemForSize(ctx, inventoryRepo, cmd.Size())
	if err != nil {
		return err
	}

	actorID := cmd.ActorID()
	o, err := h.placement.Place(services.PlaceOrderParams{
		OrderID:      cmd.OrderID(),
		Customer:     cmd.Customer(),
		Size:         cmd.Size(),
		Quantity:     cmd.Quantity(),
		DeliveryMode: cmd.DeliveryMode(),
		CreatedBy:    &actorID,
	}, item)
	if err != nil {
		return err
	}

	if o.StockDeducted() {
		if err = inventoryRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, actorID, activity.OrderCreated, activity.SubjectOrder, o.ID(),
		fmt.Sprintf("created order for %d x %s", o.Quantity(), o.Size().String()),
		map[string]any{
			"customer":       o.Customer().Name(),
			"size":           o.Size().String(),
			"quantity":       o.Quantity(),
			"price":          o.Price().StringFixed(2),
			"total":          o.Total().StringFixed(2),
			"delivery_mode":  o.DeliveryMode().String(),
			"stock_deducted": o.StockDeducted(),
		},
	)
	h.notifier.OrderStatusChanged(ctx, o, order.Unknown)

	return nil
}
