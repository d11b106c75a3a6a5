package commands

import (
	"context"
	"log/slog"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/ports"
)

// Notifier reports committed changes to the activity log and, for orders, to
// the event publisher. Its failures are logged and never returned: the
// change they describe is already committed.
type Notifier struct {
	activity ports.ActivityLogger
	events   ports.OrderEventPublisher
	logger   *slog.Logger
}

// NewNotifier creates a Notifier. events may be nil when no broker is
// configured.
func NewNotifier(activity ports.ActivityLogger, events ports.OrderEventPublisher, logger *slog.Logger) Notifier {
	return Notifier{
		activity: activity,
		events:   events,
		logger:   logger.With("component", "notifier"),
	}
}

// Record appends one activity entry.
func (n Notifier) Record(
	ctx context.Context,
	actorID kernel.UUID,
	action activity.Action,
	subjectType string,
	subjectID kernel.UUID,
	description string,
	properties map[string]any,
) {
	if n.activity == nil {
		return
	}

	entry, err := activity.NewEntry(&actorID, action, subjectType, subjectID, description, properties)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to build activity entry", "action", action, "error", err)
		return
	}

	if err = n.activity.Log(ctx, entry); err != nil {
		n.logger.ErrorContext(ctx, "Failed to record activity",
			"action", action,
			"subject_id", subjectID.String(),
			"error", err,
		)
	}
}

// OrderStatusChanged publishes the move of o from the given status.
func (n Notifier) OrderStatusChanged(ctx context.Context, o *order.Order, from order.Status) {
	if n.events == nil {
		return
	}

	event := order.NewStatusChanged(o, from)
	if err := n.events.PublishStatusChanged(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, "Failed to publish order status change",
			"order_id", event.OrderID.String(),
			"to", event.To.String(),
			"error", err,
		)
	}
}
