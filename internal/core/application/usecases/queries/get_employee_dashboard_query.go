package queries

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/guard"
)

var ErrGetEmployeeDashboardQueryIsNotConstructed = errors.New(
	"GetEmployeeDashboardQuery must be created via NewGetEmployeeDashboardQuery constructor",
)

type GetEmployeeDashboardQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetEmployeeDashboardQuery(riderID kernel.UUID) (GetEmployeeDashboardQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetEmployeeDashboardQuery{}, err
	}
	return GetEmployeeDashboardQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEmployeeDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeDashboardQueryIsNotConstructed)
}

func (q GetEmployeeDashboardQuery) RiderID() kernel.UUID {
	return q.riderID
}
