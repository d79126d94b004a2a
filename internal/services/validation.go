package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rbacdashboard/backend/internal/models"
)

// validate is safe for concurrent use and caches struct metadata, so a single instance is shared
var validate = newValidator()

// newValidator configures a validator that reports JSON field names
// and knows the "permission" tag.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("permission", func(fl validator.FieldLevel) bool {
		return models.Permission(fl.Field().String()).IsValid()
	}); err != nil {
		panic(fmt.Sprintf("failed to register permission validation: %v", err))
	}
	return v
}

// ValidationError is returned when a record fails field validation.
// Details maps JSON field names to human readable messages.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + " " + e.Details[field]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateRecord checks a user or role against its validation tags
func validateRecord(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate record: %w", err)
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = formatFieldError(fe)
	}
	return &ValidationError{Details: details}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must be at least " + fe.Param() + " characters long"
	case "unique":
		return "must not contain duplicates"
	case "permission":
		return fmt.Sprintf("unknown permission %q", fe.Value())
	default:
		return "is invalid"
	}
}
