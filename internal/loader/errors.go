package loader

import (
	"errors"
	"fmt"
)

// Causes wrapped by LoadError.
var (
	ErrUnreachable    = errors.New("resource unreachable")
	ErrBadStatus      = errors.New("unexpected response status")
	ErrNotText        = errors.New("body is not valid UTF-8 text")
	ErrMissingHeader  = errors.New("missing header row")
	ErrMissingColumns = errors.New("missing required columns")
)

// LoadError reports that a resource could not be turned into records.
// Widgets log it and fall back to an empty dataset.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(resource string, err error) *LoadError {
	return &LoadError{Resource: resource, Err: err}
}

// IsLoadError reports whether err is or wraps a LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
