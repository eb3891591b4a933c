package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/uniconnect/uniconnect/internal/pkg/apperrors"
)

// DefaultCollegeDomains is the institutional allow-list applied when the
// configuration does not override it.
var DefaultCollegeDomains = []string{".edu", ".edu.in", ".ac.in"}

var validate = validator.New()

// IsCollegeEmail reports whether email ends with one of the allowed domain
// suffixes. Matching is case-insensitive.
func IsCollegeEmail(email string, suffixes []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(email))
	for _, suffix := range suffixes {
		if strings.HasSuffix(lowered, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

// Struct runs tag-based validation on an input struct and wraps the first
// failure in apperrors.ErrValidationFailed.
func Struct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, formatFieldError(fieldErrors[0]))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
}

// formatFieldError creates a human-readable validation error message.
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
