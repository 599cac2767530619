// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand.
package validation

import "github.com/go-playground/validator/v10"

// validate is shared: validator caches struct metadata and is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the struct-tag rules of v.
func Struct(v any) error {
	return validate.Struct(v)
}
