package logtrace

import (
	"context"

	"github.com/Gautam-Hegde/notte-go/internal/common/uuid"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying a fresh request id, unless ctx
// already has one.
func WithRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIdFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.RequestID()
	return context.WithValue(ctx, requestIDKey{}, id), id
}

// RequestIdFromContext extracts the request id from the context.
// Returns an empty string if the context is nil or carries none.
func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return ""
	}
	return r
}
