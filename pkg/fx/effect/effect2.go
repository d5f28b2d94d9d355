package effect

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/core"
)

// Effect2 takes two inputs and cannot fail.
type Effect2[T1, T2 any] func(T1, T2)

// FallibleEffect2 takes two inputs and may fail.
type FallibleEffect2[T1, T2 any] func(T1, T2) error

func (e Effect2[T1, T2]) Accept(v1 T1, v2 T2) {
	e(v1, v2)
}

func (e Effect2[T1, T2]) Then(next Effect2[T1, T2]) Effect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return join2([]Effect2[T1, T2]{e, next})
}

func (e Effect2[T1, T2]) Before(previous Effect2[T1, T2]) Effect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return join2([]Effect2[T1, T2]{previous, e})
}

func (e Effect2[T1, T2]) Fallible() FallibleEffect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	return func(v1 T1, v2 T2) error {
		e(v1, v2)
		return nil
	}
}

func (e Effect2[T1, T2]) total() core.Total[core.Args2[T1, T2], core.Unit] {
	return func(a core.Args2[T1, T2]) core.Unit {
		e(a.V1, a.V2)
		return core.Unit{}
	}
}

func effect2[T1, T2 any](t core.Total[core.Args2[T1, T2], core.Unit]) Effect2[T1, T2] {
	return func(v1 T1, v2 T2) {
		t(core.Args2[T1, T2]{V1: v1, V2: v2})
	}
}

func join2[T1, T2 any](effects []Effect2[T1, T2]) Effect2[T1, T2] {
	steps := make([]core.Total[core.Args2[T1, T2], core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.total()
	}
	return effect2(core.SequenceTotal(steps))
}

// Of2 composes effects to run in slice order.
func Of2[T1, T2 any](effects ...Effect2[T1, T2]) Effect2[T1, T2] {
	return core.Of[Effect2[T1, T2]]("effects", effects, func(T1, T2) {}, join2[T1, T2])
}

func (e FallibleEffect2[T1, T2]) Accept(v1 T1, v2 T2) error {
	return e(v1, v2)
}

func (e FallibleEffect2[T1, T2]) Then(next FallibleEffect2[T1, T2]) FallibleEffect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return joinFallible2([]FallibleEffect2[T1, T2]{e, next})
}

func (e FallibleEffect2[T1, T2]) Before(previous FallibleEffect2[T1, T2]) FallibleEffect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return joinFallible2([]FallibleEffect2[T1, T2]{previous, e})
}

func (e FallibleEffect2[T1, T2]) OnEx(recovery FallibleEffect2[T1, T2]) FallibleEffect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return fallible2(core.OnEx(e.step(), recovery.step()))
}

func (e FallibleEffect2[T1, T2]) Recover(recovery Effect2[T1, T2]) Effect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return effect2(core.Recover(e.step(), recovery.total()))
}

func (e FallibleEffect2[T1, T2]) HandleEx(sink func(error)) Effect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("sink", sink)
	return effect2(core.HandleEx(e.step(), sink))
}

func (e FallibleEffect2[T1, T2]) IgnoreEx() Effect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	return effect2(core.IgnoreEx(e.step()))
}

func (e FallibleEffect2[T1, T2]) Apply(p Policy) FallibleEffect2[T1, T2] {
	fx.MustNotBeNil("effect", e)
	if p.Propagates() {
		return e
	}
	return fallible2(core.Apply(e.step(), p))
}

func (e FallibleEffect2[T1, T2]) step() core.Step[core.Args2[T1, T2], core.Unit] {
	return func(a core.Args2[T1, T2]) (core.Unit, error) {
		return core.Unit{}, e(a.V1, a.V2)
	}
}

func fallible2[T1, T2 any](s core.Step[core.Args2[T1, T2], core.Unit]) FallibleEffect2[T1, T2] {
	return func(v1 T1, v2 T2) error {
		_, err := s(core.Args2[T1, T2]{V1: v1, V2: v2})
		return err
	}
}

func joinFallible2[T1, T2 any](effects []FallibleEffect2[T1, T2]) FallibleEffect2[T1, T2] {
	steps := make([]core.Step[core.Args2[T1, T2], core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.step()
	}
	return fallible2(core.Sequence(steps))
}

// OfFallible2 composes effects to run in slice order, stopping at the first failure.
func OfFallible2[T1, T2 any](effects ...FallibleEffect2[T1, T2]) FallibleEffect2[T1, T2] {
	return core.Of[FallibleEffect2[T1, T2]]("effects", effects, func(T1, T2) error { return nil }, joinFallible2[T1, T2])
}
