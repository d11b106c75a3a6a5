package queries

import (
	"context"
	"fmt"
	"log/slog"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const adminDashboardCacheKey = "admin"

// GetAdminDashboardQueryHandler counts non-archived orders per status, sums
// the revenue of completed orders (archived ones included) and lists the
// items that are critical or out of stock.
type GetAdminDashboardQueryHandler struct {
	db     *gorm.DB
	cache  ports.DashboardCache
	logger *slog.Logger
}

// NewGetAdminDashboardQueryHandler accepts a nil cache.
func NewGetAdminDashboardQueryHandler(
	db *gorm.DB,
	cache ports.DashboardCache,
	logger *slog.Logger,
) GetAdminDashboardQueryHandler {
	return GetAdminDashboardQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "admin_dashboard"),
	}
}

func (h GetAdminDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetAdminDashboardQuery,
) (AdminDashboard, error) {
	if err := query.Validate(); err != nil {
		return AdminDashboard{}, err
	}

	return cached(ctx, h.cache, h.logger, adminDashboardCacheKey, h.compute)
}

func (h GetAdminDashboardQueryHandler) compute(ctx context.Context) (AdminDashboard, error) {
	db := h.db.WithContext(ctx)

	var orderCounts []statusCount
	err := db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		WHERE archived_at IS NULL
		GROUP BY status`).Scan(&orderCounts).Error
	if err != nil {
		return AdminDashboard{}, fmt.Errorf("count orders: %w", err)
	}

	var revenue decimal.Decimal
	err = db.Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ?`, order.Completed.String()).Row().Scan(&revenue)
	if err != nil {
		return AdminDashboard{}, fmt.Errorf("sum revenue: %w", err)
	}

	var itemCounts []statusCount
	err = db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM inventory_items
		WHERE archived_at IS NULL
		GROUP BY status`).Scan(&itemCounts).Error
	if err != nil {
		return AdminDashboard{}, fmt.Errorf("count inventory: %w", err)
	}

	lowStock := make([]InventoryItemView, 0)
	err = db.Raw(`
		SELECT id, product_name, size, price, quantity, status, updated_at
		FROM inventory_items
		WHERE archived_at IS NULL AND status IN ?
		ORDER BY quantity, size`,
		[]string{inventory.OutOfStock.String(), inventory.Critical.String()},
	).Scan(&lowStock).Error
	if err != nil {
		return AdminDashboard{}, fmt.Errorf("list low stock: %w", err)
	}

	return AdminDashboard{
		OrdersByStatus: countsByStatus([]string{
			order.Pending.String(),
			order.OutForDelivery.String(),
			order.Completed.String(),
			order.Cancelled.String(),
		}, orderCounts),
		Revenue: revenue.StringFixed(2),
		InventoryByStatus: countsByStatus([]string{
			inventory.Available.String(),
			inventory.Critical.String(),
			inventory.OutOfStock.String(),
		}, itemCounts),
		LowStock: lowStock,
	}, nil
}
