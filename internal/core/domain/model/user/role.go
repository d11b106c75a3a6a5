package user

import (
	"fmt"

	"icetube/internal/pkg/errs"
)

// Role decides which routes and dashboards a user reaches.
// The numeric values are persisted and must not change.
type Role int

const (
	UnknownRole Role = 0
	Admin       Role = 1
	Employee    Role = 2
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Admin:       "admin",
		Employee:    "employee",
	}
}

// ParseRole accepts "admin" or "employee".
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != Admin && r != Employee {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
