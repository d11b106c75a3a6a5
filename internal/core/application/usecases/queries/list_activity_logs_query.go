package queries

import (
	"errors"

	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

const (
	DefaultActivityLogLimit = 50
	MaxActivityLogLimit     = 200
)

var ErrListActivityLogsQueryIsNotConstructed = errors.New(
	"ListActivityLogsQuery must be created via NewListActivityLogsQuery constructor",
)

// ListActivityLogsQuery reads the newest activity log entries.
type ListActivityLogsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListActivityLogsQuery takes a limit between 1 and MaxActivityLogLimit;
// zero selects DefaultActivityLogLimit.
func NewListActivityLogsQuery(limit int) (ListActivityLogsQuery, error) {
	if limit == 0 {
		limit = DefaultActivityLogLimit
	}
	if limit < 1 || limit > MaxActivityLogLimit {
		return ListActivityLogsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxActivityLogLimit)
	}
	return ListActivityLogsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListActivityLogsQuery) Validate() error {
	return q.guard.Validate(ErrListActivityLogsQueryIsNotConstructed)
}

func (q ListActivityLogsQuery) Limit() int {
	return q.limit
}
