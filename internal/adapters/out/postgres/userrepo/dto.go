// Package userrepo persists users with GORM.
package userrepo

import (
	"time"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row layout of users. Role keeps its numeric value
// (admin = 1, employee = 2).
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role      int       `gorm:"type:smallint;not null;index"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Value(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      int(u.Role()),
		Status:    u.Status().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := user.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, user.Role(dto.Role), status, dto.CreatedAt)
}
