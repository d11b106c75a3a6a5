package queries

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery reads one user. The HTTP layer uses it to resolve the acting
// user of a request.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}
