package queries

import (
	"errors"

	"icetube/internal/pkg/guard"
)

var ErrGetAdminDashboardQueryIsNotConstructed = errors.New(
	"GetAdminDashboardQuery must be created via NewGetAdminDashboardQuery constructor",
)

type GetAdminDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAdminDashboardQuery() GetAdminDashboardQuery {
	return GetAdminDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAdminDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminDashboardQueryIsNotConstructed)
}
