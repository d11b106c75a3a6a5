package queries

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists non-archived orders, newest first, optionally
// narrowed to one status and one rider.
//
// Example:
//
//	q, err := NewListOrdersQuery("out_for_delivery", "")
//	orders, err := handler.Handle(ctx, q)
type ListOrdersQuery struct {
	status  *order.Status
	riderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses the optional filters; empty strings mean "any".
func NewListOrdersQuery(status, riderID string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	var errList []error
	if status != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			errList = append(errList, err)
		} else {
			q.status = &s
		}
	}
	if riderID != "" {
		id, err := kernel.UUIDFromString(riderID)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("rider_id", err))
		} else {
			q.riderID = &id
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) RiderID() *kernel.UUID {
	return q.riderID
}
