package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when the requested row does not exist.
var ErrNotFound = errors.New("not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistenceError wraps a database failure after the surrounding transaction
// has been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
