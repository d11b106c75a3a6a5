package queries

import (
	"context"

	"icetube/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its rider's name.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+orderColumns+`
		WHERE o.id = ?`, query.OrderID().Value()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var view OrderView
	if err = h.db.ScanRows(rows, &view); err != nil {
		return OrderView{}, err
	}

	return view, rows.Err()
}
