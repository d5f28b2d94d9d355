package core

// Unit is the result of a step that produces nothing and the input of a
// step that takes nothing.
type Unit = struct{}

// Step is a fallible operation from A to R.
type Step[A, R any] func(A) (R, error)

// Total is an operation from A to R that cannot fail.
type Total[A, R any] func(A) R

type Args2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type Args3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

type Args4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Lift views a total operation as a step that never fails.
func Lift[A, R any](t Total[A, R]) Step[A, R] {
	return func(a A) (R, error) {
		return t(a), nil
	}
}
