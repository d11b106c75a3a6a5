package queries

import (
	"context"
	"time"

	"icetube/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

type userRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      int
	Status    string
	CreatedAt time.Time
}

func (r userRow) view() UserView {
	return UserView{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      user.Role(r.Role).String(),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("users").
		Select("id, name, email, role, status, created_at").
		Order("name, email")
	if r := query.Role(); r != nil {
		db = db.Where("role = ?", int(*r))
	}

	var rows []userRow
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]UserView, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.view())
	}
	return users, nil
}
