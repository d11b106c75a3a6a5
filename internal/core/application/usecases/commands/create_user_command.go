package commands

import (
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers an admin or a delivery employee. Name and
// email are checked by user.NewUser in the handler.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID
	name    string
	email   string
	role    user.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(actorID, userID kernel.UUID, name, email, role string) (CreateUserCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := userID.Validate(); err != nil {
		errList = append(errList, err)
	}

	parsedRole, err := user.ParseRole(role)
	if err != nil {
		errList = append(errList, err)
	}

	if err = errors.Join(errList...); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		actorID: actorID,
		userID:  userID,
		name:    name,
		email:   email,
		role:    parsedRole,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateUserCommand) Name() string {
	return c.name
}

func (c CreateUserCommand) Email() string {
	return c.email
}

func (c CreateUserCommand) Role() user.Role {
	return c.role
}
