package domain

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/effect"
)

// Each runs e on every element in order.
func Each[T any](e effect.Effect1[T]) SliceEffect[T] {
	fx.MustNotBeNil("effect", e)
	return func(vs []T) {
		for _, v := range vs {
			e(v)
		}
	}
}

// EachFallible runs e on every element in order and stops at the first
// failing one, reporting it as an *ElementError.
func EachFallible[T any](e effect.FallibleEffect1[T]) SliceFallible[T] {
	fx.MustNotBeNil("effect", e)
	return func(vs []T) error {
		for i, v := range vs {
			if err := e(v); err != nil {
				return &ElementError{Index: i, Err: err}
			}
		}
		return nil
	}
}
