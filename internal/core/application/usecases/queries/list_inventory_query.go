package queries

import (
	"errors"

	"icetube/internal/pkg/guard"
)

var ErrListInventoryQueryIsNotConstructed = errors.New(
	"ListInventoryQuery must be created via NewListInventoryQuery constructor",
)

// ListInventoryQuery lists the non-archived inventory items by size.
type ListInventoryQuery struct {
	guard guard.ConstructorGuard
}

func NewListInventoryQuery() ListInventoryQuery {
	return ListInventoryQuery{guard: guard.NewConstructorGuard()}
}

func (q ListInventoryQuery) Validate() error {
	return q.guard.Validate(ErrListInventoryQueryIsNotConstructed)
}
