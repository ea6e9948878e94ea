package rlevec

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is reported by Get, Set, Insert and Remove when the
// supplied position falls outside the valid range. Match with errors.Is;
// the concrete error is an *IndexError carrying the details.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrNotFound is returned by Store.Get for keys that have never been put
// or have been deleted.
var ErrNotFound = errors.New("not found")

// IndexError describes an out-of-bounds access to a vector.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func indexErr(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Len: length}
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("rlevec: %s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
