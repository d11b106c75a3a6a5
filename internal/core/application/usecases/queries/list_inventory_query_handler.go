package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListInventoryQueryHandler struct {
	db *gorm.DB
}

func NewListInventoryQueryHandler(db *gorm.DB) ListInventoryQueryHandler {
	return ListInventoryQueryHandler{db: db}
}

func (h ListInventoryQueryHandler) Handle(ctx context.Context, query ListInventoryQuery) ([]InventoryItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]InventoryItemView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, product_name, size, price, quantity, status, updated_at
		FROM inventory_items
		WHERE archived_at IS NULL
		ORDER BY size`).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
