package http

import (
	"net/http"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListUsers handles GET /api/v1/users?role=.
func (s *Server) ListUsers(c echo.Context) error {
	query, err := queries.NewListUsersQuery(c.QueryParam("role"))
	if err != nil {
		return err
	}

	users, err := s.h.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(actorFrom(c).ID, userID, req.Name, req.Email, req.Role)
	if err != nil {
		return err
	}
	if err = s.h.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: userID.String()})
}

// ChangeUserStatus handles PUT /api/v1/users/:id/status.
func (s *Server) ChangeUserStatus(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req setUserStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserStatusCommand(actorFrom(c).ID, userID, req.Status)
	if err != nil {
		return err
	}
	if err = s.h.ChangeUserStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
