package apperrors

import "strings"

// FieldError describes one request field that failed local validation.
type FieldError struct {
	Field  string // json name of the offending field
	Value  any
	ErrStr string
}

func (fe FieldError) Error() string {
	if fe.Field == "" {
		return fe.ErrStr
	}
	return fe.Field + ": " + fe.ErrStr
}

// FieldErrors collects every failed field of a request.
type FieldErrors []FieldError

func (fes FieldErrors) Error() string {
	parts := make([]string, 0, len(fes))
	for _, fe := range fes {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}
