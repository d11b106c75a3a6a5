package ports

import (
	"context"
)

// DashboardCache keeps recently computed dashboards for a short time.
// Values are stored as JSON, so dst must be a pointer to a JSON-decodable type.
type DashboardCache interface {
	// Get fills dst and reports true on a hit.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
