package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	ErrOrderIsArchived    = errors.New("order is archived")
	ErrOrderIsTerminal    = errors.New("order is completed or cancelled")
	ErrOrderIsNotTerminal = errors.New("only completed or cancelled orders can be archived")
	ErrPickUpHasNoRider   = errors.New("pick-up orders are not assigned to a rider")
)

// Order is a customer order for a quantity of one size. It is the aggregate
// root for everything that happens to the order after it is placed.
//
// Order follows these invariants:
//   - Quantity is at least 1
//   - Price and total are set once by NewOrder (total = price × quantity)
//     and carried unchanged through RestoreOrder; no method recomputes them
//   - Status only changes along the transition table of Status
//   - Archived orders accept no further changes
type Order struct {
	id           kernel.UUID
	customer     Customer
	size         kernel.Size
	quantity     int
	deliveryMode DeliveryMode

	// price and total are the snapshot taken at creation.
	price decimal.Decimal
	total decimal.Decimal

	status        Status
	orderDate     time.Time
	deliveryDate  *time.Time
	riderID       *kernel.UUID
	deliveryPhoto string

	// stockDeducted records whether the quantity is currently taken from an
	// inventory item, so cancellation only gives back what was taken.
	stockDeducted bool

	createdBy  *kernel.UUID
	archivedAt *time.Time
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder places a Pending order and freezes its price and total.
//
// Parameters:
//   - id: unique identifier of the order
//   - customer: who the order is for
//   - size: the normalized size ordered
//   - quantity: number of units, at least 1
//   - mode: PickUp or Deliver
//   - price: unit price resolved by the caller (inventory price or fallback)
//   - createdBy: acting user, nil when unknown
//
// Example:
//
//	customer, _ := order.NewCustomer("Ana", "12 Mabini St", "0917 000 0000")
//	size, _ := kernel.NewSize("medium")
//	o, err := order.NewOrder(kernel.NewUUID(), customer, size, 3, order.Deliver, decimal.NewFromInt(100), nil)
//	// o.Total() == 300
func NewOrder(
	id kernel.UUID,
	customer Customer,
	size kernel.Size,
	quantity int,
	mode DeliveryMode,
	price decimal.Decimal,
	createdBy *kernel.UUID,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		orderDate: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setSize(size),
		o.setQuantity(quantity),
		o.setDeliveryMode(mode),
		o.setPrice(price),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	o.total = o.price.Mul(decimal.NewFromInt(int64(o.quantity)))
	return o, nil
}

// Snapshot is the persisted state RestoreOrder rebuilds an Order from.
type Snapshot struct {
	ID            kernel.UUID
	Customer      Customer
	Size          kernel.Size
	Quantity      int
	DeliveryMode  DeliveryMode
	Price         decimal.Decimal
	Total         decimal.Decimal
	Status        Status
	OrderDate     time.Time
	DeliveryDate  *time.Time
	RiderID       *kernel.UUID
	DeliveryPhoto string
	StockDeducted bool
	CreatedBy     *kernel.UUID
	ArchivedAt    *time.Time
	UpdatedAt     time.Time
}

// RestoreOrder rebuilds an Order read from storage. The stored total is kept
// as is, even if it no longer equals price × quantity.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		orderDate:     s.OrderDate,
		deliveryDate:  s.DeliveryDate,
		deliveryPhoto: s.DeliveryPhoto,
		stockDeducted: s.StockDeducted,
		archivedAt:    s.ArchivedAt,
		updatedAt:     s.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.Customer),
		o.setSize(s.Size),
		o.setQuantity(s.Quantity),
		o.setDeliveryMode(s.DeliveryMode),
		o.setPrice(s.Price),
		o.setTotal(s.Total),
		o.setStatus(s.Status),
		o.setRider(s.RiderID),
		o.setCreatedBy(s.CreatedBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Size() kernel.Size {
	return o.size
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) DeliveryMode() DeliveryMode {
	return o.deliveryMode
}

// Price returns the unit price captured at creation.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// Total returns the total captured at creation. It is never recomputed.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate is set the first time the order reaches Completed.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Rider returns the assigned rider, nil when none is assigned.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

func (o *Order) DeliveryPhoto() string {
	return o.deliveryPhoto
}

func (o *Order) StockDeducted() bool {
	return o.stockDeducted
}

func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdBy
}

func (o *Order) ArchivedAt() *time.Time {
	return o.archivedAt
}

func (o *Order) IsArchived() bool {
	return o.archivedAt != nil
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsAssignedTo reports whether userID is the order's rider.
func (o *Order) IsAssignedTo(userID kernel.UUID) bool {
	return o.riderID != nil && o.riderID.IsEqual(userID)
}

// CheckStatusChange returns the stock effect of moving to target without
// changing anything. Archived orders reject every move.
func (o *Order) CheckStatusChange(target Status) (StockEffect, error) {
	if o.IsArchived() {
		return NoStockEffect, errs.NewInvalidTransitionErrorWithCause(o.status.String(), target.String(), ErrOrderIsArchived)
	}
	return o.status.CheckTransition(target)
}

// ChangeStatus moves the order to target following the transition table.
// Moving to the current status does nothing. Reaching Completed stamps the
// delivery date unless one is already set.
//
// ChangeStatus does not touch inventory; callers apply the StockEffect
// returned by CheckStatusChange first (see services.OrderLifecycle).
func (o *Order) ChangeStatus(target Status) error {
	if _, err := o.CheckStatusChange(target); err != nil {
		return err
	}
	if o.status == target {
		return nil
	}

	now := time.Now().UTC()
	o.status = target
	if target == Completed && o.deliveryDate == nil {
		o.deliveryDate = &now
	}
	o.updatedAt = now
	return nil
}

// MarkStockDeducted records that the order quantity was taken from inventory.
func (o *Order) MarkStockDeducted() {
	o.stockDeducted = true
}

// MarkStockRestored records that the order quantity was given back.
func (o *Order) MarkStockRestored() {
	o.stockDeducted = false
}

// AssignRider sets the delivery rider. Terminal, archived and pick-up orders
// cannot be assigned. Reassigning an active order is allowed.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if err := o.ensureActive(); err != nil {
		return err
	}
	if o.deliveryMode == PickUp {
		return errs.NewValueIsInvalidErrorWithCause("delivery mode", ErrPickUpHasNoRider)
	}

	o.riderID = &riderID
	o.updatedAt = time.Now().UTC()
	return nil
}

// AttachDeliveryPhoto stores the reference of the proof-of-delivery photo.
// It is attached before the order is completed.
func (o *Order) AttachDeliveryPhoto(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("delivery photo")
	}
	if err := o.ensureActive(); err != nil {
		return err
	}

	o.deliveryPhoto = ref
	o.updatedAt = time.Now().UTC()
	return nil
}

// Archive soft-deletes a completed or cancelled order.
func (o *Order) Archive() error {
	if o.IsArchived() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrOrderIsArchived)
	}
	if !o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrOrderIsNotTerminal)
	}

	now := time.Now().UTC()
	o.archivedAt = &now
	o.updatedAt = now
	return nil
}

func (o *Order) ensureActive() error {
	if o.IsArchived() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrOrderIsArchived)
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrOrderIsTerminal)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.size = size
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryMode(mode DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.deliveryMode = mode
	return nil
}

func (o *Order) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	o.price = price
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setRider(riderID *kernel.UUID) error {
	if riderID == nil {
		return nil
	}
	if err := riderID.Validate(); err != nil {
		return err
	}
	id := *riderID
	o.riderID = &id
	return nil
}

func (o *Order) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy == nil {
		return nil
	}
	if err := createdBy.Validate(); err != nil {
		return err
	}
	id := *createdBy
	o.createdBy = &id
	return nil
}
