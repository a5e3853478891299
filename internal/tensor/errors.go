package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrTensorReleased   = errors.New("tensor has been released")
)

// IndexError reports which part of an index or offset violated the bounds
// of a shape. It unwraps to ErrIndexOutOfBounds so callers can match the
// error kind with errors.Is.
type IndexError struct {
	Shape  Shape // shape the access was checked against
	Axis   int   // offending axis, -1 for offset or arity failures
	Index  int   // offending coordinate or linear offset
	Limit  int   // exclusive bound that was violated
	Detail string
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("shape %v: %s: %s", e.Shape, e.Detail, ErrIndexOutOfBounds)
	}
	if e.Axis >= 0 {
		return fmt.Sprintf("shape %v: index %d out of range for axis %d (size %d)", e.Shape, e.Index, e.Axis, e.Limit)
	}
	return fmt.Sprintf("shape %v: offset %d out of range [0, %d)", e.Shape, e.Index, e.Limit)
}

// Unwrap reports the error kind.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
