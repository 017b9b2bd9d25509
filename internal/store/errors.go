package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that match no invoice.
var ErrNotFound = errors.New("invoice not found")

// PersistenceError wraps a failed store operation. The operation that
// produced it has left prior durable state unchanged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
