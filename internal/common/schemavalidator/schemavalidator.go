// Package schemavalidator holds the shared validator used to check request
// shapes before they are sent to the Notte API.
package schemavalidator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	schemaValidator *validator.Validate
	once            sync.Once
)

// V returns the process-wide validator. Field names in reported errors are the
// json tag names.
func V() *validator.Validate {
	once.Do(func() {
		schemaValidator = validator.New(validator.WithRequiredStructEnabled())
		schemaValidator.RegisterTagNameFunc(jsonTagName)
		registerValidators(schemaValidator)
	})
	return schemaValidator
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
