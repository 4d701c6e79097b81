package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no appointment matches the requested id.
var ErrNotFound = errors.New("appointment not found")

// ValidationError reports missing or invalid booking input. It is returned
// before any persistence is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DependencyError wraps a failure of an external collaborator, storage or
// email delivery.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *DependencyError) Unwrap() error { return e.Err }
