package queries

import (
	"context"

	"icetube/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown id.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	var rows []userRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, status, created_at
		FROM users
		WHERE id = ?`, query.UserID().Value()).Scan(&rows).Error
	if err != nil {
		return UserView{}, err
	}
	if len(rows) == 0 {
		return UserView{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	return rows[0].view(), nil
}
