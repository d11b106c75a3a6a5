package http

import (
	"log/slog"
	"net/http"

	"icetube/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// MaxPhotoBytes caps the size of an uploaded delivery photo.
const MaxPhotoBytes = 10 << 20

// NewRouter builds the echo instance serving every route.
func NewRouter(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	api := e.Group("/api/v1")
	api.GET("/health", s.Health)

	authed := api.Group("", s.resolveActor, s.invalidateDashboards)
	admin := allow(user.Admin)
	employee := allow(user.Employee)
	anyone := allow(user.Admin, user.Employee)

	authed.GET("/inventory", s.ListInventory, admin)
	authed.POST("/inventory", s.CreateInventoryItem, admin)
	authed.POST("/inventory/:id/adjustments", s.AdjustStock, admin)
	authed.PUT("/inventory/:id/quantity", s.SetStock, admin)
	authed.PUT("/inventory/:id/price", s.ChangeInventoryPrice, admin)
	authed.DELETE("/inventory/:id", s.ArchiveInventoryItem, admin)

	authed.POST("/orders", s.CreateOrder, anyone)
	authed.GET("/orders", s.ListOrders, admin)
	authed.GET("/orders/:id", s.GetOrder, anyone)
	authed.PUT("/orders/:id/status", s.SetOrderStatus, anyone)
	authed.PUT("/orders/:id/rider", s.AssignRider, admin)
	authed.POST("/orders/:id/delivery", s.CompleteDelivery, employee, middleware.BodyLimit("12M"))
	authed.DELETE("/orders/:id", s.ArchiveOrder, admin)

	authed.GET("/users", s.ListUsers, admin)
	authed.POST("/users", s.CreateUser, admin)
	authed.PUT("/users/:id/status", s.ChangeUserStatus, admin)

	authed.GET("/dashboard/admin", s.AdminDashboard, admin)
	authed.GET("/dashboard/employee", s.EmployeeDashboard, employee)

	authed.GET("/activity-logs", s.ListActivityLogs, admin)

	return e
}

// Health handles GET /api/v1/health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// invalidateDashboards drops cached dashboards once a write request succeeded.
func (s *Server) invalidateDashboards(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if s.invalidator == nil || err != nil || c.Request().Method == http.MethodGet {
			return err
		}
		if c.Response().Status >= http.StatusBadRequest {
			return nil
		}
		if invErr := s.invalidator.Invalidate(c.Request().Context()); invErr != nil {
			s.logger.WarnContext(c.Request().Context(), "dashboard cache invalidation failed", "error", invErr)
		}
		return nil
	}
}
