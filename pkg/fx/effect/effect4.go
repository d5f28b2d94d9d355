package effect

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/core"
)

// Effect4 takes four inputs and cannot fail.
type Effect4[T1, T2, T3, T4 any] func(T1, T2, T3, T4)

// FallibleEffect4 takes four inputs and may fail.
type FallibleEffect4[T1, T2, T3, T4 any] func(T1, T2, T3, T4) error

func (e Effect4[T1, T2, T3, T4]) Accept(v1 T1, v2 T2, v3 T3, v4 T4) {
	e(v1, v2, v3, v4)
}

func (e Effect4[T1, T2, T3, T4]) Then(next Effect4[T1, T2, T3, T4]) Effect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return join4([]Effect4[T1, T2, T3, T4]{e, next})
}

func (e Effect4[T1, T2, T3, T4]) Before(previous Effect4[T1, T2, T3, T4]) Effect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return join4([]Effect4[T1, T2, T3, T4]{previous, e})
}

func (e Effect4[T1, T2, T3, T4]) Fallible() FallibleEffect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	return func(v1 T1, v2 T2, v3 T3, v4 T4) error {
		e(v1, v2, v3, v4)
		return nil
	}
}

func (e Effect4[T1, T2, T3, T4]) total() core.Total[core.Args4[T1, T2, T3, T4], core.Unit] {
	return func(a core.Args4[T1, T2, T3, T4]) core.Unit {
		e(a.V1, a.V2, a.V3, a.V4)
		return core.Unit{}
	}
}

func effect4[T1, T2, T3, T4 any](t core.Total[core.Args4[T1, T2, T3, T4], core.Unit]) Effect4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) {
		t(core.Args4[T1, T2, T3, T4]{V1: v1, V2: v2, V3: v3, V4: v4})
	}
}

func join4[T1, T2, T3, T4 any](effects []Effect4[T1, T2, T3, T4]) Effect4[T1, T2, T3, T4] {
	steps := make([]core.Total[core.Args4[T1, T2, T3, T4], core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.total()
	}
	return effect4(core.SequenceTotal(steps))
}

// Of4 composes effects to run in slice order.
func Of4[T1, T2, T3, T4 any](effects ...Effect4[T1, T2, T3, T4]) Effect4[T1, T2, T3, T4] {
	return core.Of[Effect4[T1, T2, T3, T4]]("effects", effects, func(T1, T2, T3, T4) {}, join4[T1, T2, T3, T4])
}

func (e FallibleEffect4[T1, T2, T3, T4]) Accept(v1 T1, v2 T2, v3 T3, v4 T4) error {
	return e(v1, v2, v3, v4)
}

func (e FallibleEffect4[T1, T2, T3, T4]) Then(next FallibleEffect4[T1, T2, T3, T4]) FallibleEffect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return joinFallible4([]FallibleEffect4[T1, T2, T3, T4]{e, next})
}

func (e FallibleEffect4[T1, T2, T3, T4]) Before(previous FallibleEffect4[T1, T2, T3, T4]) FallibleEffect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return joinFallible4([]FallibleEffect4[T1, T2, T3, T4]{previous, e})
}

func (e FallibleEffect4[T1, T2, T3, T4]) OnEx(recovery FallibleEffect4[T1, T2, T3, T4]) FallibleEffect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return fallible4(core.OnEx(e.step(), recovery.step()))
}

func (e FallibleEffect4[T1, T2, T3, T4]) Recover(recovery Effect4[T1, T2, T3, T4]) Effect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return effect4(core.Recover(e.step(), recovery.total()))
}

func (e FallibleEffect4[T1, T2, T3, T4]) HandleEx(sink func(error)) Effect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("sink", sink)
	return effect4(core.HandleEx(e.step(), sink))
}

func (e FallibleEffect4[T1, T2, T3, T4]) IgnoreEx() Effect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	return effect4(core.IgnoreEx(e.step()))
}

func (e FallibleEffect4[T1, T2, T3, T4]) Apply(p Policy) FallibleEffect4[T1, T2, T3, T4] {
	fx.MustNotBeNil("effect", e)
	if p.Propagates() {
		return e
	}
	return fallible4(core.Apply(e.step(), p))
}

func (e FallibleEffect4[T1, T2, T3, T4]) step() core.Step[core.Args4[T1, T2, T3, T4], core.Unit] {
	return func(a core.Args4[T1, T2, T3, T4]) (core.Unit, error) {
		return core.Unit{}, e(a.V1, a.V2, a.V3, a.V4)
	}
}

func fallible4[T1, T2, T3, T4 any](s core.Step[core.Args4[T1, T2, T3, T4], core.Unit]) FallibleEffect4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) error {
		_, err := s(core.Args4[T1, T2, T3, T4]{V1: v1, V2: v2, V3: v3, V4: v4})
		return err
	}
}

func joinFallible4[T1, T2, T3, T4 any](effects []FallibleEffect4[T1, T2, T3, T4]) FallibleEffect4[T1, T2, T3, T4] {
	steps := make([]core.Step[core.Args4[T1, T2, T3, T4], core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.step()
	}
	return fallible4(core.Sequence(steps))
}

// OfFallible4 composes effects to run in slice order, stopping at the first failure.
func OfFallible4[T1, T2, T3, T4 any](effects ...FallibleEffect4[T1, T2, T3, T4]) FallibleEffect4[T1, T2, T3, T4] {
	return core.Of[FallibleEffect4[T1, T2, T3, T4]]("effects", effects, func(T1, T2, T3, T4) error { return nil }, joinFallible4[T1, T2, T3, T4])
}
