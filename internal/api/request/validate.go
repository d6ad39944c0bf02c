package request

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request body against its struct tags. The returned
// error message is safe to surface to the caller.
func Validate(v any) error {
	return validate.Struct(v)
}
