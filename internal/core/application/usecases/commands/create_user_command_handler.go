package commands

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"
)

// ErrEmailAlreadyUsed is the cause returned when another user has the email.
var ErrEmailAlreadyUsed = errors.New("email is already used")

type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   Notifier
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory, notifier Notifier) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	_, err = repo.FindByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailAlreadyUsed)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, u); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.UserCreated, activity.SubjectUser, u.ID(),
		"created "+u.Role().String()+" "+u.Name(),
		map[string]any{
			"email": u.Email(),
			"role":  u.Role().String(),
		},
	)

	return nil
}
