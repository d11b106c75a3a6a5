package http

import (
	"errors"
	"slices"

	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	ActorHeader = "X-User-ID"
	actorKey    = "actor"
)

// Actor is the active user a request acts for.
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

// resolveActor loads the user named by ActorHeader. Requests without a
// known, active user are rejected with 401.
func (s *Server) resolveActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := kernel.UUIDFromString(c.Request().Header.Get(ActorHeader))
		if err != nil {
			return ErrMissingActor
		}

		query, err := queries.NewGetUserQuery(id)
		if err != nil {
			return ErrMissingActor
		}
		u, err := s.h.GetUser.Handle(c.Request().Context(), query)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrMissingActor
		}
		if err != nil {
			return err
		}
		if u.Status != user.Active.String() {
			return ErrInactiveActor
		}

		role, err := user.ParseRole(u.Role)
		if err != nil {
			return err
		}

		c.Set(actorKey, Actor{ID: id, Role: role})
		return next(c)
	}
}

// allow rejects actors whose role is not listed with 403.
func allow(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(roles, actorFrom(c).Role) {
				return ErrForbidden
			}
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) Actor {
	actor, _ := c.Get(actorKey).(Actor)
	return actor
}

// pathID parses the :name path parameter.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
