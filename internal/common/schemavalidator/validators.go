package schemavalidator

import (
	"fmt"
	"regexp"

	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	"github.com/go-playground/validator/v10"
)

var pathSegmentRegex = regexp.MustCompile(`^[^\s/?#]+$`)

// pathSegmentValidator accepts ids that can be placed in a URL path segment
// without changing the route. The dot segments are rejected since servers
// resolve them against the parent path.
func pathSegmentValidator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "." || s == ".." {
		return false
	}
	return pathSegmentRegex.MatchString(s)
}

// ValidPathSegment reports whether id can be used as a single path segment.
func ValidPathSegment(id string) bool {
	return V().Var(id, "required,pathSegment") == nil
}

func registerValidators(v *validator.Validate) {
	v.RegisterValidation("pathSegment", pathSegmentValidator)
}

// Struct validates s and converts any failure into apperrors.FieldErrors.
// It returns nil when s is valid.
func Struct(s any) error {
	err := V().Struct(s)
	if err == nil {
		return nil
	}
	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.FieldErrors{{ErrStr: err.Error()}}
	}
	var fes apperrors.FieldErrors
	for _, e := range validatorErrors {
		fes = append(fes, apperrors.FieldError{
			Field:  e.Field(),
			Value:  e.Value(),
			ErrStr: describe(e),
		})
	}
	return fes
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "pathSegment":
		return "must not contain whitespace, '/', '?' or '#', nor be '.' or '..'"
	default:
		return fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
}
