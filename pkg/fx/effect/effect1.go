package effect

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/core"
)

// Effect1 consumes one input and cannot fail.
type Effect1[T any] func(T)

// FallibleEffect1 consumes one input and reports failure through its error.
type FallibleEffect1[T any] func(T) error

// Accept invokes the effect.
func (e Effect1[T]) Accept(v T) {
	e(v)
}

// Then returns an effect that runs e and then next with the same input.
func (e Effect1[T]) Then(next Effect1[T]) Effect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return join1([]Effect1[T]{e, next})
}

// Before returns an effect that runs previous and then e with the same input.
func (e Effect1[T]) Before(previous Effect1[T]) Effect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return join1([]Effect1[T]{previous, e})
}

// Fallible views e as a fallible effect that always succeeds.
func (e Effect1[T]) Fallible() FallibleEffect1[T] {
	fx.MustNotBeNil("effect", e)
	return func(v T) error {
		e(v)
		return nil
	}
}

func (e Effect1[T]) total() core.Total[T, core.Unit] {
	return func(v T) core.Unit {
		e(v)
		return core.Unit{}
	}
}

func effect1[T any](t core.Total[T, core.Unit]) Effect1[T] {
	return func(v T) {
		t(v)
	}
}

func join1[T any](effects []Effect1[T]) Effect1[T] {
	steps := make([]core.Total[T, core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.total()
	}
	return effect1(core.SequenceTotal(steps))
}

// Of1 composes effects to run in slice order. With no effects the result is a
// no-op; a single effect is returned unchanged.
func Of1[T any](effects ...Effect1[T]) Effect1[T] {
	return core.Of[Effect1[T]]("effects", effects, func(T) {}, join1[T])
}

// Accept invokes the effect and returns its failure, if any.
func (e FallibleEffect1[T]) Accept(v T) error {
	return e(v)
}

// Then returns an effect that runs e and then next with the same input. If e
// fails, next does not run and e's failure is returned.
func (e FallibleEffect1[T]) Then(next FallibleEffect1[T]) FallibleEffect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return joinFallible1([]FallibleEffect1[T]{e, next})
}

// Before returns an effect that runs previous and then e. If previous fails,
// e does not run.
func (e FallibleEffect1[T]) Before(previous FallibleEffect1[T]) FallibleEffect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return joinFallible1([]FallibleEffect1[T]{previous, e})
}

// OnEx returns an effect that runs recovery with the original input when e
// fails, reporting recovery's outcome instead of e's.
func (e FallibleEffect1[T]) OnEx(recovery FallibleEffect1[T]) FallibleEffect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return fallible1(core.OnEx(e.step(), recovery.step()))
}

// Recover is OnEx with a recovery that cannot fail; the result cannot fail.
func (e FallibleEffect1[T]) Recover(recovery Effect1[T]) Effect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return effect1(core.Recover(e.step(), recovery.total()))
}

// HandleEx returns an effect that passes any failure of e to sink exactly once
// and returns normally.
func (e FallibleEffect1[T]) HandleEx(sink func(error)) Effect1[T] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("sink", sink)
	return effect1(core.HandleEx(e.step(), sink))
}

// IgnoreEx returns an effect that silently drops any failure of e.
func (e FallibleEffect1[T]) IgnoreEx() Effect1[T] {
	fx.MustNotBeNil("effect", e)
	return effect1(core.IgnoreEx(e.step()))
}

// Apply returns e governed by p. Under Propagate, e itself is returned.
func (e FallibleEffect1[T]) Apply(p Policy) FallibleEffect1[T] {
	fx.MustNotBeNil("effect", e)
	if p.Propagates() {
		return e
	}
	return fallible1(core.Apply(e.step(), p))
}

func (e FallibleEffect1[T]) step() core.Step[T, core.Unit] {
	return func(v T) (core.Unit, error) {
		return core.Unit{}, e(v)
	}
}

func fallible1[T any](s core.Step[T, core.Unit]) FallibleEffect1[T] {
	return func(v T) error {
		_, err := s(v)
		return err
	}
}

func joinFallible1[T any](effects []FallibleEffect1[T]) FallibleEffect1[T] {
	steps := make([]core.Step[T, core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.step()
	}
	return fallible1(core.Sequence(steps))
}

// OfFallible1 composes effects to run in slice order, stopping at the first
// failure. With no effects the result never fails; a single effect is
// returned unchanged.
func OfFallible1[T any](effects ...FallibleEffect1[T]) FallibleEffect1[T] {
	return core.Of[FallibleEffect1[T]]("effects", effects, func(T) error { return nil }, joinFallible1[T])
}
