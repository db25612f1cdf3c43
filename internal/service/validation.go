package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports missing or malformed input using JSON field names.
type ValidationError struct {
	Missing []string
	Invalid []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return "invalid request"
	}
	return strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError with a fixed message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidator returns a validator that names fields after their JSON keys.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return validate
}

// validatePayload runs struct validation and converts failures into a ValidationError.
func validatePayload(validate *validator.Validate, payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	result := &ValidationError{}
	for _, fieldErr := range fieldErrors {
		name := fieldPath(fieldErr.Namespace())
		if fieldErr.Tag() == "required" {
			result.Missing = append(result.Missing, name)
			continue
		}
		result.Invalid = append(result.Invalid, name)
	}
	return result
}

// fieldPath drops the struct name prefix from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
