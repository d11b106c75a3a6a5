package http

import (
	"errors"
	"net/http"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	ErrMissingActor  = errors.New("missing or unknown X-User-ID")
	ErrInactiveActor = errors.New("acting user is inactive")
	ErrForbidden     = errors.New("role is not allowed to use this route")
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP statuses. Transition errors are
// checked before value errors because a rejected status string carries both.
func statusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, ErrMissingActor), errors.Is(err, ErrInactiveActor):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, commands.ErrOrderNotAssignedToActor):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler replaces echo's default so every error, including ones
// returned by middleware, is rendered as Error.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	message := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, Error{Code: code, Message: message})
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
	}
}
