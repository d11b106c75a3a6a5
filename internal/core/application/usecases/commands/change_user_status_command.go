package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrChangeUserStatusCommandIsNotConstructed = errors.New(
	"ChangeUserStatusCommand must be created via NewChangeUserStatusCommand constructor",
)

// ChangeUserStatusCommand activates or deactivates a user.
type ChangeUserStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID
	status  user.Status

	guard guard.ConstructorGuard
}

func NewChangeUserStatusCommand(actorID, userID kernel.UUID, status string) (ChangeUserStatusCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := userID.Validate(); err != nil {
		errList = append(errList, err)
	}

	parsed, err := user.ParseStatus(status)
	if err != nil {
		errList = append(errList, err)
	}

	if err = errors.Join(errList...); err != nil {
		return ChangeUserStatusCommand{}, err
	}

	return ChangeUserStatusCommand{
		actorID: actorID,
		userID:  userID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserStatusCommandIsNotConstructed)
}

func (c ChangeUserStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ChangeUserStatusCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangeUserStatusCommand) Status() user.Status {
	return c.status
}
