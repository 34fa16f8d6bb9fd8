package store

import "fmt"

// ValidationError reports a missing or malformed field on an intent's input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NotFoundError reports a referenced order id that is not in the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.ID)
}

// PersistenceError wraps a durability-service failure.
type PersistenceError struct {
	Op  string // "read", "write", "delete"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("session %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
