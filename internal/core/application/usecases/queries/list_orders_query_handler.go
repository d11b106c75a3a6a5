package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"o.archived_at IS NULL"}
	var args []any
	if s := query.Status(); s != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, s.String())
	}
	if r := query.RiderID(); r != nil {
		conditions = append(conditions, "o.rider_id = ?")
		args = append(args, r.Value())
	}

	orders := make([]OrderView, 0)
	err := h.db.WithContext(ctx).Raw(`SELECT `+orderColumns+`
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY o.order_date DESC, o.id`, args...).Scan(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
