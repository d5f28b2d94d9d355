package domain

import (
	"math/big"

	"github.com/govalues/decimal"

	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/effect"
)

// Accumulate adds every input to *total.
func Accumulate[T Number](total *T) effect.Effect1[T] {
	fx.MustNotBeNil("total", total)
	return func(v T) {
		*total += v
	}
}

// Count increments *n once per input, whatever its value.
func Count[T any](n *int) effect.Effect1[T] {
	fx.MustNotBeNil("n", n)
	return func(T) {
		*n++
	}
}

// Toggle flips *state for every true input.
func Toggle[T Boolean](state *T) effect.Effect1[T] {
	fx.MustNotBeNil("state", state)
	return func(v T) {
		*state = T(bool(*state) != bool(v))
	}
}

// AppendChar appends every input character to *dst.
func AppendChar[T Char](dst *[]T) effect.Effect1[T] {
	fx.MustNotBeNil("dst", dst)
	return func(c T) {
		*dst = append(*dst, c)
	}
}

// NonZero fails with ErrZero on a zero input and accepts anything else.
func NonZero[T Number]() effect.FallibleEffect1[T] {
	return func(v T) error {
		if v == 0 {
			return fx.Fail(ErrZero)
		}
		return nil
	}
}

// InRange fails with a RangeError for inputs outside [lo, hi].
func InRange[T Number](lo, hi T) effect.FallibleEffect1[T] {
	return func(v T) error {
		if v < lo || v > hi {
			return fx.Fail(RangeError[T]{Value: v, Lo: lo, Hi: hi})
		}
		return nil
	}
}

// Clamp forwards its input to next after bounding it to [lo, hi].
func Clamp[T Number](lo, hi T, next effect.Effect1[T]) effect.Effect1[T] {
	fx.MustNotBeNil("next", next)
	return func(v T) {
		next(min(max(v, lo), hi))
	}
}

// AccumulateDecimal adds every input to *total. It fails, leaving *total
// unchanged, when the sum overflows the decimal range.
func AccumulateDecimal(total *decimal.Decimal) DecimalEffect {
	fx.MustNotBeNil("total", total)
	return func(v decimal.Decimal) error {
		sum, err := total.Add(v)
		if err != nil {
			return fx.Fail(err)
		}
		*total = sum
		return nil
	}
}

// AccumulateBig adds every input to total in place.
func AccumulateBig(total *big.Int) BigIntEffect {
	fx.MustNotBeNil("total", total)
	return func(v *big.Int) {
		total.Add(total, v)
	}
}
