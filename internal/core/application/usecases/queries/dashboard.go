package queries

import (
	"context"
	"log/slog"

	"icetube/internal/core/ports"
)

// AdminDashboard summarizes the whole shop.
type AdminDashboard struct {
	OrdersByStatus    map[string]int64    `json:"orders_by_status"`
	Revenue           string              `json:"revenue"`
	InventoryByStatus map[string]int64    `json:"inventory_by_status"`
	LowStock          []InventoryItemView `json:"low_stock"`
}

// EmployeeDashboard summarizes the deliveries assigned to one rider.
type EmployeeDashboard struct {
	DeliveriesByStatus map[string]int64 `json:"deliveries_by_status"`
	Active             []OrderView      `json:"active"`
}

type statusCount struct {
	Status string
	Count  int64
}

// countsByStatus seeds every known status with zero so the dashboards always
// carry the full set of keys.
func countsByStatus(known []string, rows []statusCount) map[string]int64 {
	counts := make(map[string]int64, len(known))
	for _, s := range known {
		counts[s] = 0
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts
}

// cached serves key from cache when possible and stores the computed value
// otherwise. Cache failures are logged and never fail the query.
func cached[T any](
	ctx context.Context,
	cache ports.DashboardCache,
	logger *slog.Logger,
	key string,
	compute func(context.Context) (T, error),
) (T, error) {
	if cache == nil {
		return compute(ctx)
	}

	var hit T
	ok, err := cache.Get(ctx, key, &hit)
	if err != nil {
		logger.WarnContext(ctx, "dashboard cache read failed", "key", key, "error", err)
	}
	if ok && err == nil {
		return hit, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	if err = cache.Set(ctx, key, value); err != nil {
		logger.WarnContext(ctx, "dashboard cache write failed", "key", key, "error", err)
	}
	return value, nil
}
