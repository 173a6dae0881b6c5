package validator

import "errors"

// ErrValidationFailed is returned by Apply when rules fail.
var ErrValidationFailed = errors.New("validation failed")
