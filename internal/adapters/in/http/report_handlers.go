package http

import (
	"net/http"
	"strconv"

	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AdminDashboard handles GET /api/v1/dashboard/admin.
func (s *Server) AdminDashboard(c echo.Context) error {
	dashboard, err := s.h.AdminDashboard.Handle(c.Request().Context(), queries.NewGetAdminDashboardQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// EmployeeDashboard handles GET /api/v1/dashboard/employee for the acting rider.
func (s *Server) EmployeeDashboard(c echo.Context) error {
	query, err := queries.NewGetEmployeeDashboardQuery(actorFrom(c).ID)
	if err != nil {
		return err
	}

	dashboard, err := s.h.EmployeeDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// ListActivityLogs handles GET /api/v1/activity-logs?limit=.
func (s *Server) ListActivityLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		limit = n
	}

	query, err := queries.NewListActivityLogsQuery(limit)
	if err != nil {
		return err
	}
	logs, err := s.h.ListActivityLogs.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
