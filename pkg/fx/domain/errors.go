package domain

import (
	"errors"
	"fmt"
)

var ErrZero = errors.New("domain: zero value")

type RangeError[T Number] struct {
	Value, Lo, Hi T
}

func (e RangeError[T]) Error() string {
	return fmt.Sprintf("domain: %v outside [%v, %v]", e.Value, e.Lo, e.Hi)
}

// TypeMismatchError is reported when a boxed value does not hold the type a
// specialized effect expects.
type TypeMismatchError struct {
	Want string
	Got  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("domain: want %s, got %T", e.Want, e.Got)
}

// ElementError locates the failing element of a slice effect.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("domain: element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
