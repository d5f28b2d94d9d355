package domain

import (
	"reflect"

	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/effect"
	"github.com/ib-77/sidefx/pkg/fx/provide"
)

// Box lets a specialized effect stand where an effect over any is expected.
// A boxed value that is not a T fails with *TypeMismatchError and e does not run.
func Box[T any](e effect.Effect1[T]) effect.FallibleEffect1[any] {
	fx.MustNotBeNil("effect", e)
	return BoxFallible(e.Fallible())
}

func BoxFallible[T any](e effect.FallibleEffect1[T]) effect.FallibleEffect1[any] {
	fx.MustNotBeNil("effect", e)
	return func(v any) error {
		t, ok := v.(T)
		if !ok {
			return &TypeMismatchError{Want: reflect.TypeFor[T]().String(), Got: v}
		}
		return e(t)
	}
}

// Unbox narrows an effect over any to a specialized one. It cannot fail.
func Unbox[T any](e effect.Effect1[any]) effect.Effect1[T] {
	fx.MustNotBeNil("effect", e)
	return func(v T) {
		e(v)
	}
}

func UnboxFallible[T any](e effect.FallibleEffect1[any]) effect.FallibleEffect1[T] {
	fx.MustNotBeNil("effect", e)
	return func(v T) error {
		return e(v)
	}
}

func BoxProvider[T any](p provide.Provider[T]) provide.Provider[any] {
	fx.MustNotBeNil("provider", p)
	return func() any {
		return p()
	}
}

// UnboxProvider narrows a provider over any, failing with *TypeMismatchError
// when the produced value is not a T.
func UnboxProvider[T any](p provide.Provider[any]) provide.FallibleProvider[T] {
	fx.MustNotBeNil("provider", p)
	return func() (T, error) {
		v := p()
		t, ok := v.(T)
		if !ok {
			var zero T
			return zero, &TypeMismatchError{Want: reflect.TypeFor[T]().String(), Got: v}
		}
		return t, nil
	}
}
