// Package user models the people who operate the back office: admins, who
// manage stock, users and every order, and employees, who deliver orders.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an admin or a delivery employee. Login credentials live outside
// this service; a User only carries identity, role and status.
type User struct {
	id        kernel.UUID
	name      string
	email     string
	role      Role
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewUser registers an active user. The email is lower-cased.
func NewUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	u := &User{
		status:    Active,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func RestoreUser(id kernel.UUID, name, email string, role Role, status Status, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		u.setStatus(status),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) Status() Status {
	return u.status
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) IsActive() bool {
	return u.status == Active
}

// CanDeliver reports whether the user may be assigned as a delivery rider.
func (u *User) CanDeliver() bool {
	return u.IsActive() && u.role == Employee
}

// ChangeStatus activates or deactivates the user.
func (u *User) ChangeStatus(status Status) error {
	return u.setStatus(status)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
