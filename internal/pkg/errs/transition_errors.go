package errs

import "fmt"

// InvalidTransitionError reports a status change outside the order state machine,
// including target values that are not statuses at all.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(
		fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, sanitize(e.From), sanitize(e.To)),
		e.Cause,
	)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Is also matches the cause, so callers can test for the underlying reason.
func (e *InvalidTransitionError) Is(target error) bool {
	return causeIs(e.Cause, target)
}
