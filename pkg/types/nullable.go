// Package types provides value types shared by the API request and response shapes.
package types

// Nullable is implemented by types that distinguish an explicit JSON null from
// a zero value.
type Nullable interface {
	IsNil() bool
}
