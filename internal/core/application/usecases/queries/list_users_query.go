package queries

import (
	"errors"

	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists users by name, optionally only one role.
type ListUsersQuery struct {
	role *user.Role

	guard guard.ConstructorGuard
}

func NewListUsersQuery(role string) (ListUsersQuery, error) {
	q := ListUsersQuery{guard: guard.NewConstructorGuard()}
	if role != "" {
		r, err := user.ParseRole(role)
		if err != nil {
			return ListUsersQuery{}, err
		}
		q.role = &r
	}
	return q, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Role() *user.Role {
	return q.role
}
