package effect

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/core"
)

// Effect3 takes three inputs and cannot fail.
type Effect3[T1, T2, T3 any] func(T1, T2, T3)

// FallibleEffect3 takes three inputs and may fail.
type FallibleEffect3[T1, T2, T3 any] func(T1, T2, T3) error

func (e Effect3[T1, T2, T3]) Accept(v1 T1, v2 T2, v3 T3) {
	e(v1, v2, v3)
}

func (e Effect3[T1, T2, T3]) Then(next Effect3[T1, T2, T3]) Effect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return join3([]Effect3[T1, T2, T3]{e, next})
}

func (e Effect3[T1, T2, T3]) Before(previous Effect3[T1, T2, T3]) Effect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return join3([]Effect3[T1, T2, T3]{previous, e})
}

func (e Effect3[T1, T2, T3]) Fallible() FallibleEffect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	return func(v1 T1, v2 T2, v3 T3) error {
		e(v1, v2, v3)
		return nil
	}
}

func (e Effect3[T1, T2, T3]) total() core.Total[core.Args3[T1, T2, T3], core.Unit] {
	return func(a core.Args3[T1, T2, T3]) core.Unit {
		e(a.V1, a.V2, a.V3)
		return core.Unit{}
	}
}

func effect3[T1, T2, T3 any](t core.Total[core.Args3[T1, T2, T3], core.Unit]) Effect3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) {
		t(core.Args3[T1, T2, T3]{V1: v1, V2: v2, V3: v3})
	}
}

func join3[T1, T2, T3 any](effects []Effect3[T1, T2, T3]) Effect3[T1, T2, T3] {
	steps := make([]core.Total[core.Args3[T1, T2, T3], core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.total()
	}
	return effect3(core.SequenceTotal(steps))
}

// Of3 composes effects to run in slice order.
func Of3[T1, T2, T3 any](effects ...Effect3[T1, T2, T3]) Effect3[T1, T2, T3] {
	return core.Of[Effect3[T1, T2, T3]]("effects", effects, func(T1, T2, T3) {}, join3[T1, T2, T3])
}

func (e FallibleEffect3[T1, T2, T3]) Accept(v1 T1, v2 T2, v3 T3) error {
	return e(v1, v2, v3)
}

func (e FallibleEffect3[T1, T2, T3]) Then(next FallibleEffect3[T1, T2, T3]) FallibleEffect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return joinFallible3([]FallibleEffect3[T1, T2, T3]{e, next})
}

func (e FallibleEffect3[T1, T2, T3]) Before(previous FallibleEffect3[T1, T2, T3]) FallibleEffect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return joinFallible3([]FallibleEffect3[T1, T2, T3]{previous, e})
}

func (e FallibleEffect3[T1, T2, T3]) OnEx(recovery FallibleEffect3[T1, T2, T3]) FallibleEffect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return fallible3(core.OnEx(e.step(), recovery.step()))
}

func (e FallibleEffect3[T1, T2, T3]) Recover(recovery Effect3[T1, T2, T3]) Effect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return effect3(core.Recover(e.step(), recovery.total()))
}

func (e FallibleEffect3[T1, T2, T3]) HandleEx(sink func(error)) Effect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("sink", sink)
	return effect3(core.HandleEx(e.step(), sink))
}

func (e FallibleEffect3[T1, T2, T3]) IgnoreEx() Effect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	return effect3(core.IgnoreEx(e.step()))
}

func (e FallibleEffect3[T1, T2, T3]) Apply(p Policy) FallibleEffect3[T1, T2, T3] {
	fx.MustNotBeNil("effect", e)
	if p.Propagates() {
		return e
	}
	return fallible3(core.Apply(e.step(), p))
}

func (e FallibleEffect3[T1, T2, T3]) step() core.Step[core.Args3[T1, T2, T3], core.Unit] {
	return func(a core.Args3[T1, T2, T3]) (core.Unit, error) {
		return core.Unit{}, e(a.V1, a.V2, a.V3)
	}
}

func fallible3[T1, T2, T3 any](s core.Step[core.Args3[T1, T2, T3], core.Unit]) FallibleEffect3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) error {
		_, err := s(core.Args3[T1, T2, T3]{V1: v1, V2: v2, V3: v3})
		return err
	}
}

func joinFallible3[T1, T2, T3 any](effects []FallibleEffect3[T1, T2, T3]) FallibleEffect3[T1, T2, T3] {
	steps := make([]core.Step[core.Args3[T1, T2, T3], core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.step()
	}
	return fallible3(core.Sequence(steps))
}

// OfFallible3 composes effects to run in slice order, stopping at the first failure.
func OfFallible3[T1, T2, T3 any](effects ...FallibleEffect3[T1, T2, T3]) FallibleEffect3[T1, T2, T3] {
	return core.Of[FallibleEffect3[T1, T2, T3]]("effects", effects, func(T1, T2, T3) error { return nil }, joinFallible3[T1, T2, T3])
}
