// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/resolver.go` calls `validateStruct` immediately after
// it unmarshals the overlay layers into the active variant.  Any tag
// mismatch or validation error aborts startup, ensuring the binary never
// runs with partial, malformed, or missing configuration.
//
// The rules in play today are `required` on the identity fields, a range
// check on `port`, and `url` on `terms_of_service`.  Custom rules — for
// example, “origins must be absolute URLs” — can be registered here as
// the configuration surface grows.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(variant any) error {
	return v.Struct(variant)
}
