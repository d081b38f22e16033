package todo

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrEmptyTask    = errors.New("task text cannot be empty")
	ErrInvalidPage  = errors.New("must not be negative")
	ErrInvalidLimit = errors.New("must not be negative")
	ErrPageTooLarge = errors.New("offset exceeds the addressable range")
)

// ValidationError reports caller input that was rejected before any query ran.
// It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a *ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
