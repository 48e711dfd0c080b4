package apiclient

import (
	"strings"

	"github.com/Gautam-Hegde/notte-go/internal/common/schemavalidator"
	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
)

// ResolveID picks the id for an operation on resource: explicit when given,
// otherwise fallback (the id of the last stored response). It fails with an
// invalid request error when both are empty or the id cannot be used as a
// path segment.
func ResolveID(resource, explicit, fallback string) (string, error) {
	id := explicit
	if id == "" {
		id = fallback
	}
	if id == "" {
		return "", apperrors.InvalidRequestError(resource + " ID is required")
	}
	if !schemavalidator.ValidPathSegment(id) {
		return "", apperrors.InvalidRequestError("invalid " + strings.ToLower(resource) + " ID: " + id)
	}
	return id, nil
}
