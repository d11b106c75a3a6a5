package services

import (
	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"
)

// Transition describes what SetStatus did.
type Transition struct {
	From order.Status
	To   order.Status

	// Changed is false for a move to the current status; nothing needs to be
	// persisted or logged then.
	Changed bool

	// StockDelta is the quantity change applied to the inventory item:
	// positive when stock was restored, negative when it was deducted.
	StockDelta int
}

// OrderLifecycle is the only place where an order's status changes together
// with the stock it holds.
//
// Rules applied by SetStatus:
//  1. Moving to the current status is a no-op
//  2. Cancelling an active order gives the quantity back to the item, if the
//     order had taken it
//  3. Leaving Cancelled (reactivation) takes the quantity from the item again
//     when an item exists; insufficient stock aborts the whole move
//  4. Any other allowed move only changes the status
//
// On any error both the order and the item are left as they were.
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// SetStatus moves o to target. item is the non-archived inventory item for
// the order's size, or nil when there is none.
//
// Example:
//
//	tr, err := lifecycle.SetStatus(o, item, order.Cancelled)
//	if err != nil {
//	    return err
//	}
//	if tr.Changed {
//	    // persist o (and item when tr.StockDelta != 0)
//	}
func (OrderLifecycle) SetStatus(o *order.Order, item *inventory.Item, target order.Status) (Transition, error) {
	if err := o.Validate(); err != nil {
		return Transition{}, err
	}
	if item != nil {
		if err := item.Validate(); err != nil {
			return Transition{}, err
		}
		if !item.Size().IsEqual(o.Size()) {
			return Transition{}, errs.NewValueIsInvalidErrorWithCause("inventory item", ErrItemSizeMismatch)
		}
		if item.IsArchived() {
			item = nil
		}
	}

	from := o.Status()
	effect, err := o.CheckStatusChange(target)
	if err != nil {
		return Transition{}, err
	}
	if from == target {
		return Transition{From: from, To: target}, nil
	}

	tr := Transition{From: from, To: target, Changed: true}

	switch effect {
	case order.RestoreStock:
		if o.StockDeducted() {
			if item != nil {
				if err = item.AdjustQuantity(o.Quantity()); err != nil {
					return Transition{}, err
				}
				tr.StockDelta = o.Quantity()
			}
			o.MarkStockRestored()
		}
	case order.DeductStock:
		if item != nil {
			if err = item.AdjustQuantity(-o.Quantity()); err != nil {
				return Transition{}, err
			}
			tr.StockDelta = -o.Quantity()
			o.MarkStockDeducted()
		}
	case order.NoStockEffect:
	}

	if err = o.ChangeStatus(target); err != nil {
		return Transition{}, err
	}

	return tr, nil
}
