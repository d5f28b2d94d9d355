package effect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sidefx/pkg/fx"
)

func samePointer(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestOf1_EmptyIsNoOp(t *testing.T) {
	t.Parallel()
	Of1[int]().Accept(3)
	assert.NoError(t, OfFallible1[int]().Accept(3))
}

func TestOf1_SingletonIsReturnedUnchanged(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	a := tr.mark("A")
	c := failOnZero()

	assert.True(t, samePointer(Of1(a), a))
	assert.True(t, samePointer(OfFallible1(c), c))

	Of1(a).Accept(1)
	a.Accept(1)
	assert.Equal(t, []string{"A", "A"}, tr.log)
	assert.ErrorIs(t, OfFallible1(c).Accept(0), errZero)
}

func TestThenBefore_Order(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	tr.mark("e1").Then(tr.mark("e2")).Accept(1)
	assert.Equal(t, []string{"e1", "e2"}, tr.log)

	tr.log = nil
	tr.mark("e1").Before(tr.mark("e2")).Accept(1)
	assert.Equal(t, []string{"e2", "e1"}, tr.log)

	tr.log = nil
	tr.fallible("e1").Before(tr.fallible("e2")).Accept(1)
	assert.Equal(t, []string{"e2", "e1"}, tr.log)
}

func TestThen_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	e1 := tr.mark("e1")
	_ = e1.Then(tr.mark("e2"))

	e1.Accept(1)
	assert.Equal(t, []string{"e1"}, tr.log)
}

func TestFallible_ShortCircuit(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	e1 := FallibleEffect1[int](func(int) error {
		tr.log = append(tr.log, "e1")
		return errZero
	})

	require.ErrorIs(t, e1.Then(tr.fallible("e2")).Accept(1), errZero)
	assert.Equal(t, []string{"e1"}, tr.log)

	tr.log = nil
	require.ErrorIs(t, OfFallible1(e1, tr.fallible("e2"), tr.fallible("e3")).Accept(1), errZero)
	assert.Equal(t, []string{"e1"}, tr.log)

	tr.log = nil
	require.ErrorIs(t, tr.fallible("self").Before(e1).Accept(1), errZero)
	assert.Equal(t, []string{"e1"}, tr.log, "self must not run after previous failed")
}

func TestOfFallible1_RunsAllInOrder(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	require.NoError(t, OfFallible1(tr.fallible("a"), tr.fallible("b"), tr.fallible("c")).Accept(1))
	assert.Equal(t, []string{"a", "b", "c"}, tr.log)
}

func TestHandleEx_SinkCalledOncePerFailure(t *testing.T) {
	t.Parallel()
	var handled []error
	e := failOnZero().HandleEx(func(err error) { handled = append(handled, err) })

	e.Accept(1)
	assert.Empty(t, handled)

	e.Accept(0)
	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], errZero)
}

func TestIgnoreEx_Silent(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	e := failOnZero().IgnoreEx().Then(tr.mark("after"))

	assert.NotPanics(t, func() { e.Accept(0) })
	assert.Equal(t, []string{"after"}, tr.log)
}

func TestOnEx_RecoveryOutcomeIsReported(t *testing.T) {
	t.Parallel()
	var seen []int
	recovery := FallibleEffect1[int](func(v int) error {
		seen = append(seen, v)
		return fx.Fail("recovery failed")
	})

	err := failOnZero().OnEx(recovery).Accept(0)
	cause, ok := fx.CauseOf[string](err)
	require.True(t, ok)
	assert.Equal(t, "recovery failed", cause)
	assert.Equal(t, []int{0}, seen)

	assert.NoError(t, failOnZero().OnEx(recovery).Accept(7))
	assert.Equal(t, []int{0}, seen, "recovery must not run on success")
}

func TestOnEx_OriginalArgumentsNotEffectState(t *testing.T) {
	t.Parallel()
	type box struct{ n int }
	in := box{n: 1}
	var got box

	primary := FallibleEffect1[box](func(b box) error {
		b.n = 99
		return errZero
	})
	recovery := FallibleEffect1[box](func(b box) error {
		got = b
		return nil
	})

	require.NoError(t, primary.OnEx(recovery).Accept(in))
	assert.Equal(t, in, got)
}

func TestApply_Policies(t *testing.T) {
	t.Parallel()
	c := failOnZero()

	assert.True(t, samePointer(c.Apply(Propagate()), c))
	assert.ErrorIs(t, c.Apply(Propagate()).Accept(0), errZero)

	count := 0
	assert.NoError(t, c.Apply(Handle(func(error) { count++ })).Accept(0))
	assert.Equal(t, 1, count)

	assert.NoError(t, c.Apply(Ignore()).Accept(0))
}

func TestComposition_RejectsNilEagerly(t *testing.T) {
	t.Parallel()
	tr := &trace{}
	a := tr.mark("A")
	f := tr.fallible("F")

	cases := map[string]func(){
		"then":        func() { a.Then(nil) },
		"before":      func() { a.Before(nil) },
		"of nil":      func() { Of1[int](nil) },
		"of middle":   func() { Of1(a, nil, a) },
		"nil self":    func() { Effect1[int](nil).Then(a) },
		"f then":      func() { f.Then(nil) },
		"f before":    func() { f.Before(nil) },
		"f onex":      func() { f.OnEx(nil) },
		"f recover":   func() { f.Recover(nil) },
		"f handleex":  func() { f.HandleEx(nil) },
		"f ignoreex":  func() { FallibleEffect1[int](nil).IgnoreEx() },
		"f of middle": func() { OfFallible1(f, nil, f) },
		"f handle":    func() { f.Apply(Handle(nil)) },
		"fallible":    func() { Effect1[int](nil).Fallible() },
	}
	for name, compose := range cases {
		err := fx.Catch(compose)
		assert.True(t, fx.IsValidationError(err), "%s: got %v", name, err)
	}
	assert.Empty(t, tr.log, "nothing may run during composition")

	var ve *fx.ValidationError
	require.True(t, errors.As(fx.Catch(func() { Of1(a, nil, a) }), &ve))
	assert.Equal(t, 1, ve.Index)
}
