package store

import "fmt"

// ValidationError reports an input that failed a numeric-range or
// required-field check before any state was touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ReferentialError reports a foreign-key style reference to an entity that
// does not exist.
type ReferentialError struct {
	Entity string
	ID     string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("store: %s %q does not exist", e.Entity, e.ID)
}
