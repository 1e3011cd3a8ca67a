package validator

import (
	"errors"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/pkg/msg"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &RequestValidator{validate: validate}
}

// Validate returns a validation error carrying the first failed rule as a readable message.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return apperror.Validation(err.Error())
	}

	first := fieldErrors[0]
	switch first.Tag() {
	case "required":
		return apperror.Validation(msg.GetMessage("validation.required", first.Field()))
	case "min":
		return apperror.Validation(msg.GetMessage("validation.min", first.Field(), first.Param()))
	default:
		return apperror.Validation(msg.GetMessage("validation.invalid", first.Field()))
	}
}
