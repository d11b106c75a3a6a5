package ports

import (
	"context"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/order"
)

// ActivityLogger appends entries to the audit trail. It is called after the
// business transaction committed, so a failure here never undoes a change.
type ActivityLogger interface {
	Log(ctx context.Context, entry activity.Entry) error
}

// OrderEventPublisher announces committed order status changes to other
// systems.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
