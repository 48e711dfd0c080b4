// Package uuid generates time-ordered UUIDv7 identifiers used to correlate
// SDK requests in logs.
package uuid

import (
	"github.com/google/uuid"
)

type UUID = uuid.UUID

// UUID7 generates a new UUIDv7, or the nil UUID if the random source fails.
func UUID7() UUID {
	uuidv7, _ := uuid.NewV7()
	return uuidv7
}

// RequestID returns a new UUIDv7 in its string form.
func RequestID() string {
	return UUID7().String()
}
