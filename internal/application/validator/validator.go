// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"todo-api/internal/domain/exception"
)

type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	return &RequestValidator{validate: validate}
}

// fieldName reports fields by the name the client sent them with.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// Validate returns an exception.Validation describing every failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return exception.Validation(err.Error(), err)
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details = append(details, describe(fieldError))
	}
	return exception.Validation(strings.Join(details, "; "), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", fe.Field())
	case "email":
		return fmt.Sprintf("%s: value is not a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s: input should be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s: should have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: should have at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s: should be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag())
	}
}
