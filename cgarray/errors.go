package cgarray

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds matches every *OutOfBoundsError under errors.Is.
var ErrOutOfBounds = errors.New("index out of bounds")

// OutOfBoundsError is returned for an index outside [0, Len).
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cgarray: index %d out of bounds [0, %d)", e.Index, e.Len)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
