package queries

import (
	"context"
	"fmt"
	"log/slog"

	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/ports"

	"gorm.io/gorm"
)

// GetEmployeeDashboardQueryHandler counts a rider's non-archived deliveries
// per status and lists the ones still pending or out for delivery.
type GetEmployeeDashboardQueryHandler struct {
	db     *gorm.DB
	cache  ports.DashboardCache
	logger *slog.Logger
}

// NewGetEmployeeDashboardQueryHandler accepts a nil cache.
func NewGetEmployeeDashboardQueryHandler(
	db *gorm.DB,
	cache ports.DashboardCache,
	logger *slog.Logger,
) GetEmployeeDashboardQueryHandler {
	return GetEmployeeDashboardQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "employee_dashboard"),
	}
}

func (h GetEmployeeDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeeDashboardQuery,
) (EmployeeDashboard, error) {
	if err := query.Validate(); err != nil {
		return EmployeeDashboard{}, err
	}

	riderID := query.RiderID().Value()
	return cached(ctx, h.cache, h.logger, "employee:"+riderID.String(),
		func(ctx context.Context) (EmployeeDashboard, error) {
			db := h.db.WithContext(ctx)

			var counts []statusCount
			err := db.Raw(`
				SELECT status, COUNT(*) AS count
				FROM orders
				WHERE rider_id = ? AND archived_at IS NULL
				GROUP BY status`, riderID).Scan(&counts).Error
			if err != nil {
				return EmployeeDashboard{}, fmt.Errorf("count deliveries: %w", err)
			}

			active := make([]OrderView, 0)
			err = db.Raw(`SELECT `+orderColumns+`
				WHERE o.rider_id = ? AND o.archived_at IS NULL AND o.status IN ?
				ORDER BY o.order_date, o.id`,
				riderID, []string{order.Pending.String(), order.OutForDelivery.String()},
			).Scan(&active).Error
			if err != nil {
				return EmployeeDashboard{}, fmt.Errorf("list active deliveries: %w", err)
			}

			return EmployeeDashboard{
				DeliveriesByStatus: countsByStatus([]string{
					order.Pending.String(),
					order.OutForDelivery.String(),
					order.Completed.String(),
					order.Cancelled.String(),
				}, counts),
				Active: active,
			}, nil
		})
}
