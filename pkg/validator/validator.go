package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/response"
)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validator.Struct(i)
}

// CollectFieldErrors converts validator errors into the per-field entries the
// error envelope carries. Returns nil for non-validation errors.
func CollectFieldErrors(err error) []response.ValidationError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fieldErrs := make([]response.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs = append(fieldErrs, response.ValidationError{
			Field: fieldErr.Field(),
			Tag:   fieldErr.Tag(),
		})
	}

	return fieldErrs
}

// WriteValidationError writes the 400 envelope with per-field messages.
func WriteValidationError(c echo.Context, err error) error {
	return response.WriteErrorResponse(c, errs.ErrClient, CollectFieldErrors(err))
}
