package user

import (
	"fmt"

	"icetube/internal/pkg/errs"
)

// Status tells whether a user may act in the system. Inactive users keep
// their history but are refused by the HTTP layer and cannot be assigned
// as riders.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Active:        "active",
		Inactive:      "inactive",
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case Active.String():
		return Active, nil
	case Inactive.String():
		return Inactive, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("user status", fmt.Errorf("%q is not a valid user status", s))
	}
}

func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("user status", fmt.Errorf("%d is not a valid user status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
