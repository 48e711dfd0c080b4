package notte

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	jsoniter "github.com/json-iterator/go"
)

// ErrorMode selects how much of an error is shown to whoever reads it.
type ErrorMode string

const (
	ErrorModeDeveloper ErrorMode = "developer"
	ErrorModeUser      ErrorMode = "user"
	ErrorModeAgent     ErrorMode = "agent"
)

type errorModeKey struct{}

func ParseErrorMode(s string) (ErrorMode, error) {
	switch m := ErrorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ErrorModeDeveloper, ErrorModeUser, ErrorModeAgent:
		return m, nil
	}
	return "", apperrors.InvalidRequestError(fmt.Sprintf("invalid error mode %q: want developer, user or agent", s))
}

func WithErrorMode(ctx context.Context, mode ErrorMode) context.Context {
	return context.WithValue(ctx, errorModeKey{}, mode)
}

// ErrorModeFromContext returns the mode attached with WithErrorMode, or
// ErrorModeDeveloper.
func ErrorModeFromContext(ctx context.Context) ErrorMode {
	if ctx != nil {
		if m, ok := ctx.Value(errorModeKey{}).(ErrorMode); ok {
			return m
		}
	}
	return ErrorModeDeveloper
}

// FormatError renders err for the mode carried by ctx.
//
//	developer: "<kind> (status <code>): <message>" followed by the raw response
//	user:      "<message>"
//	agent:     "<kind>: <message>" on a single line
func FormatError(ctx context.Context, err error) string {
	if err == nil {
		return ""
	}
	kind := apperrors.KindOf(err)
	if kind == "" {
		kind = apperrors.KindAPI
	}
	switch ErrorModeFromContext(ctx) {
	case ErrorModeUser:
		return err.Error()
	case ErrorModeAgent:
		return string(kind) + ": " + strings.Join(strings.Fields(err.Error()), " ")
	}

	var b strings.Builder
	b.WriteString(string(kind))
	if code := apperrors.StatusCodeOf(err); code != 0 {
		fmt.Fprintf(&b, " (status %d)", code)
	}
	b.WriteString(": ")
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		b.WriteString(appErr.ErrorAll())
		if raw := appErr.RawResponse(); raw != nil {
			if data, mErr := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(raw); mErr == nil {
				b.WriteString("\nraw response: ")
				b.Write(data)
			}
		}
	} else {
		b.WriteString(err.Error())
	}
	return b.String()
}
