package inventory

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
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
	ErrItemIsArchived       = errors.New("inventory item is archived")
)

// Item is the stock record for one size. It is the canonical price source for
// orders of that size while it is not archived.
type Item struct {
	id          kernel.UUID
	productName string
	size        kernel.Size
	price       decimal.Decimal
	quantity    int
	status      StockStatus
	createdAt   time.Time
	updatedAt   time.Time
	archivedAt  *time.Time

	guard guard.ConstructorGuard
}

// NewItem registers stock for a size. Price may be zero but not negative.
func NewItem(
	id kernel.UUID,
	productName string,
	size kernel.Size,
	price decimal.Decimal,
	quantity int,
) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setSize(size),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted item. The status is recomputed from the
// quantity rather than trusted from storage.
func RestoreItem(
	id kernel.UUID,
	productName string,
	size kernel.Size,
	price decimal.Decimal,
	quantity int,
	createdAt time.Time,
	updatedAt time.Time,
	archivedAt *time.Time,
) (*Item, error) {
	item := &Item{
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		archivedAt: archivedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setSize(size),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductName() string {
	return i.productName
}

func (i *Item) Size() kernel.Size {
	return i.size
}

func (i *Item) Price() decimal.Decimal {
	return i.price
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Status() StockStatus {
	return i.status
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) ArchivedAt() *time.Time {
	return i.archivedAt
}

// IsArchived reports whether Archive was called; archived items reject changes.
func (i *Item) IsArchived() bool {
	return i.archivedAt != nil
}

func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// AdjustQuantity applies delta to the quantity on hand: positive restocks,
// negative deducts. A result below zero fails with errs.InsufficientStockError
// and the item is left unchanged.
func (i *Item) AdjustQuantity(delta int) error {
	if err := i.ensureActive(); err != nil {
		return err
	}

	next := i.quantity + delta
	if next < 0 {
		return errs.NewInsufficientStockError(i.size.String(), -delta, i.quantity)
	}

	return i.applyQuantity(next)
}

// SetQuantity overwrites the quantity on hand (admin stock-in).
func (i *Item) SetQuantity(quantity int) error {
	if err := i.ensureActive(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	return i.applyQuantity(quantity)
}

// ChangePrice sets the price used for orders created from now on.
func (i *Item) ChangePrice(price decimal.Decimal) error {
	if err := i.ensureActive(); err != nil {
		return err
	}
	if err := i.setPrice(price); err != nil {
		return err
	}

	i.touch()
	return nil
}

// Archive hides the item from lookups. Archiving twice is an error.
func (i *Item) Archive() error {
	if err := i.ensureActive(); err != nil {
		return err
	}

	now := time.Now().UTC()
	i.archivedAt = &now
	i.updatedAt = now
	return nil
}

func (i *Item) ensureActive() error {
	if i.IsArchived() {
		return errs.NewValueIsInvalidErrorWithCause("inventory item", ErrItemIsArchived)
	}
	return nil
}

func (i *Item) applyQuantity(quantity int) error {
	if err := i.setQuantity(quantity); err != nil {
		return err
	}

	i.touch()
	return nil
}

func (i *Item) touch() {
	i.updatedAt = time.Now().UTC()
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *Item) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	i.size = size
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	i.quantity = quantity
	i.status = StatusForQuantity(quantity)
	return nil
}
