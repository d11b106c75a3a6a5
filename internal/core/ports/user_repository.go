package ports

import (
	"context"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error

	// Get returns errs.ObjectNotFoundError when no user has this id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail matches the lower-cased email.
	// Returns errs.ObjectNotFoundError when nobody uses it.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
