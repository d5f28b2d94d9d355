package domain

import (
	"math/big"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/sidefx/pkg/fx/effect"
	"github.com/ib-77/sidefx/pkg/fx/provide"
)

type Integer = constraints.Integer

type Float = constraints.Float

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

type Boolean interface {
	~bool
}

// Char covers runes and bytes.
type Char interface {
	~rune | ~byte
}

type (
	NumberEffect[T Number]   = effect.Effect1[T]
	NumberFallible[T Number] = effect.FallibleEffect1[T]
	NumberProvider[T Number] = provide.Provider[T]

	BoolEffect   = effect.Effect1[bool]
	BoolProvider = provide.Provider[bool]

	CharEffect = effect.Effect1[rune]
	ByteEffect = effect.Effect1[byte]

	DecimalEffect   = effect.FallibleEffect1[decimal.Decimal]
	DecimalProvider = provide.FallibleProvider[decimal.Decimal]
	BigIntEffect    = effect.Effect1[*big.Int]

	SliceEffect[T any]   = effect.Effect1[[]T]
	SliceFallible[T any] = effect.FallibleEffect1[[]T]
)
