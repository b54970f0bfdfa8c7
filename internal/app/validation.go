package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"pustakdhaan/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload checks the validate tags of a request payload and reports
// every offending field in a single InvalidOperation error.
func validatePayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domain.InvalidOperation("invalid request: %s", err)
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		problems = append(problems, describeFieldError(fieldErr))
	}
	return domain.InvalidOperation("invalid request: %s", strings.Join(problems, "; "))
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Namespace()
	if _, rest, found := strings.Cut(field, "."); found {
		field = rest
	}

	switch fieldErr.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
}
