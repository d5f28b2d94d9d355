package domain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/effect"
	"github.com/ib-77/sidefx/pkg/fx/provide"
)

func TestNumberDomains_ShareTheAlgebra(t *testing.T) {
	t.Parallel()

	var total int64
	var seen int
	var e NumberEffect[int64] = Accumulate(&total).Then(Count[int64](&seen))
	e.Accept(4)
	e.Accept(6)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, 2, seen)

	var f float32
	guarded := NonZero[float32]().Then(Accumulate(&f).Fallible())
	require.ErrorIs(t, guarded.Accept(0), ErrZero)
	require.NoError(t, guarded.Accept(1.5))
	assert.Equal(t, float32(1.5), f)
}

func TestInRangeAndClamp(t *testing.T) {
	t.Parallel()

	err := InRange(1, 10).Accept(11)
	cause, ok := fx.CauseOf[RangeError[int]](err)
	require.True(t, ok)
	assert.Equal(t, RangeError[int]{Value: 11, Lo: 1, Hi: 10}, cause)
	assert.NoError(t, InRange(1, 10).Accept(10))

	var got []uint8
	sink := effect.Effect1[uint8](func(v uint8) { got = append(got, v) })
	Each(Clamp[uint8](10, 20, sink)).Accept([]uint8{5, 15, 25})
	assert.Equal(t, []uint8{10, 15, 20}, got)
}

func TestBoolAndCharDomains(t *testing.T) {
	t.Parallel()

	state := false
	var toggle BoolEffect = Toggle(&state)
	Each(toggle).Accept([]bool{true, false, true, true})
	assert.True(t, state)

	var runes []rune
	var c CharEffect = AppendChar(&runes)
	Each(c).Accept([]rune("hé"))
	assert.Equal(t, "hé", string(runes))

	var raw []byte
	var b ByteEffect = AppendChar(&raw)
	b.Then(b).Accept('x')
	assert.Equal(t, "xx", string(raw))
}

func TestAccumulateDecimal(t *testing.T) {
	t.Parallel()

	total := decimal.Zero
	add := AccumulateDecimal(&total)

	require.NoError(t, add.Accept(decimal.MustParse("1.25")))
	require.NoError(t, add.Accept(decimal.MustParse("2.50")))
	assert.Equal(t, "3.75", total.String())

	limit := decimal.MustParse("9999999999999999999")
	total = limit
	err := add.Accept(limit)
	require.Error(t, err)
	_, ok := fx.CauseOf[error](err)
	assert.True(t, ok)
	assert.Equal(t, limit, total, "a failed sum must leave the total unchanged")

	var failures int
	add.HandleEx(func(error) { failures++ }).Accept(limit)
	assert.Equal(t, 1, failures)
}

func TestAccumulateBig(t *testing.T) {
	t.Parallel()

	total := new(big.Int)
	var e BigIntEffect = AccumulateBig(total)
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	ofBig := effect.Of1[*big.Int]
	ofBig(e, e).Accept(huge)
	assert.Equal(t, "246913578024691357802469135780", total.String())
}

func TestEachFallible_StopsAtFirstFailingElement(t *testing.T) {
	t.Parallel()

	var total int
	e := EachFallible(NonZero[int]().Then(Accumulate(&total).Fallible()))
	err := e.Accept([]int{1, 2, 0, 4})

	var ee *ElementError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.Index)
	assert.ErrorIs(t, err, ErrZero)
	assert.Equal(t, 3, total)

	require.NoError(t, e.Accept(nil))
}

func TestBoxUnbox(t *testing.T) {
	t.Parallel()

	var total int
	boxed := Box(Accumulate(&total))
	require.NoError(t, boxed.Accept(3))

	err := boxed.Accept("three")
	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "int", tm.Want)
	assert.Equal(t, 3, total)

	var seen []any
	generic := effect.Effect1[any](func(v any) { seen = append(seen, v) })
	specialized := Accumulate(&total).Then(Unbox[int](generic))
	specialized.Accept(2)
	assert.Equal(t, []any{2}, seen)
	assert.Equal(t, 5, total)

	mixed := effect.OfFallible1(boxed, generic.Fallible())
	require.Error(t, mixed.Accept(1.5))
	assert.Equal(t, []any{2}, seen, "generic effect must not run after the boxed one failed")

	strict := UnboxFallible[int](boxed)
	require.NoError(t, strict.Accept(1))
	assert.Equal(t, 6, total)
}

func TestBoxProvider(t *testing.T) {
	t.Parallel()

	var p NumberProvider[int] = provide.Constant(7)
	v, err := UnboxProvider[int](BoxProvider(p)).TryGet()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = UnboxProvider[string](BoxProvider(p)).TryGet()
	var tm *TypeMismatchError
	assert.True(t, errors.As(err, &tm))

	var dp DecimalProvider = provide.Constant(decimal.One).Fallible()
	d, err := dp.TryGet()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.One))
}
