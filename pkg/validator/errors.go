package validator

import "errors"

// ErrFieldRequired is the default message of Required.
var ErrFieldRequired = errors.New("field is required")
