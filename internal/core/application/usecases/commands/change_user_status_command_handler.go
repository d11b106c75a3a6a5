package commands

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/activity"
	"icetube/internal/pkg/errs"
)

// ErrCannotDeactivateSelf keeps an admin from locking themselves out.
var ErrCannotDeactivateSelf = errors.New("users cannot change their own status")

type ChangeUserStatusCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   Notifier
}

func NewChangeUserStatusCommandHandler(uowFactory UserUoWFactory, notifier Notifier) ChangeUserStatusCommandHandler {
	return ChangeUserStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ChangeUserStatusCommandHandler) Handle(ctx context.Context, cmd ChangeUserStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorID().IsEqual(cmd.UserID()) {
		return errs.NewValueIsInvalidErrorWithCause("user", ErrCannotDeactivateSelf)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if u.Status() == cmd.Status() {
		return nil
	}

	before := u.Status()
	if err = u.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Record(ctx, cmd.ActorID(), activity.UserStatusChanged, activity.SubjectUser, u.ID(),
		u.Name()+" is now "+u.Status().String(),
		map[string]any{
			"from": before.String(),
			"to":   u.Status().String(),
		},
	)

	return nil
}
