// Package inventoryrepo persists inventory items with GORM.
package inventoryrepo

import (
	"time"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItemDTO is the row layout of inventory_items. At most one
// non-archived row exists per size (partial unique index).
type InventoryItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductName string          `gorm:"not null"`
	Size        string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_inventory_items_active_size,where:archived_at IS NULL"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	Status      string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ArchivedAt  *time.Time `gorm:"index"`
}

func (InventoryItemDTO) TableName() string {
	return "inventory_items"
}

func fromDomain(item *inventory.Item) InventoryItemDTO {
	return InventoryItemDTO{
		ID:          item.ID().Value(),
		ProductName: item.ProductName(),
		Size:        item.Size().String(),
		Price:       item.Price(),
		Quantity:    item.Quantity(),
		Status:      item.Status().String(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
		ArchivedAt:  item.ArchivedAt(),
	}
}

// toDomain ignores the stored status; RestoreItem derives it from the quantity.
func toDomain(dto InventoryItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	size, err := kernel.NewSize(dto.Size)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(
		id,
		dto.ProductName,
		size,
		dto.Price,
		dto.Quantity,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ArchivedAt,
	)
}
