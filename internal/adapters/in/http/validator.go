package http

import (
	"errors"

	"icetube/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator plugs go-playground/validator into echo.
type requestValidator struct {
	v *validatorv10.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{v: validatorv10.New()}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fields := make([]error, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, errs.NewValueIsInvalidErrorWithCause(fe.Field(), errors.New(fe.Tag())))
		}
		return errors.Join(fields...)
	}
	return errs.NewValueIsInvalidErrorWithCause("request", err)
}

// bind decodes the body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return c.Validate(req)
}
