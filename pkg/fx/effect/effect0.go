package effect

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/core"
)

// Effect0 takes no inputs and cannot fail.
type Effect0 func()

// FallibleEffect0 takes no inputs and may fail.
type FallibleEffect0 func() error

func (e Effect0) Accept() {
	e()
}

func (e Effect0) Then(next Effect0) Effect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return join0([]Effect0{e, next})
}

func (e Effect0) Before(previous Effect0) Effect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return join0([]Effect0{previous, e})
}

func (e Effect0) Fallible() FallibleEffect0 {
	fx.MustNotBeNil("effect", e)
	return func() error {
		e()
		return nil
	}
}

func (e Effect0) total() core.Total[core.Unit, core.Unit] {
	return func(_ core.Unit) core.Unit {
		e()
		return core.Unit{}
	}
}

func effect0(t core.Total[core.Unit, core.Unit]) Effect0 {
	return func() {
		t(core.Unit{})
	}
}

func join0(effects []Effect0) Effect0 {
	steps := make([]core.Total[core.Unit, core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.total()
	}
	return effect0(core.SequenceTotal(steps))
}

// Of0 composes effects to run in slice order.
func Of0(effects ...Effect0) Effect0 {
	return core.Of[Effect0]("effects", effects, func() {}, join0)
}

func (e FallibleEffect0) Accept() error {
	return e()
}

func (e FallibleEffect0) Then(next FallibleEffect0) FallibleEffect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("next", next)
	return joinFallible0([]FallibleEffect0{e, next})
}

func (e FallibleEffect0) Before(previous FallibleEffect0) FallibleEffect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("previous", previous)
	return joinFallible0([]FallibleEffect0{previous, e})
}

func (e FallibleEffect0) OnEx(recovery FallibleEffect0) FallibleEffect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return fallible0(core.OnEx(e.step(), recovery.step()))
}

func (e FallibleEffect0) Recover(recovery Effect0) Effect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("recovery", recovery)
	return effect0(core.Recover(e.step(), recovery.total()))
}

func (e FallibleEffect0) HandleEx(sink func(error)) Effect0 {
	fx.MustNotBeNil("effect", e)
	fx.MustNotBeNil("sink", sink)
	return effect0(core.HandleEx(e.step(), sink))
}

func (e FallibleEffect0) IgnoreEx() Effect0 {
	fx.MustNotBeNil("effect", e)
	return effect0(core.IgnoreEx(e.step()))
}

func (e FallibleEffect0) Apply(p Policy) FallibleEffect0 {
	fx.MustNotBeNil("effect", e)
	if p.Propagates() {
		return e
	}
	return fallible0(core.Apply(e.step(), p))
}

func (e FallibleEffect0) step() core.Step[core.Unit, core.Unit] {
	return func(_ core.Unit) (core.Unit, error) {
		return core.Unit{}, e()
	}
}

func fallible0(s core.Step[core.Unit, core.Unit]) FallibleEffect0 {
	return func() error {
		_, err := s(core.Unit{})
		return err
	}
}

func joinFallible0(effects []FallibleEffect0) FallibleEffect0 {
	steps := make([]core.Step[core.Unit, core.Unit], len(effects))
	for i, e := range effects {
		steps[i] = e.step()
	}
	return fallible0(core.Sequence(steps))
}

// OfFallible0 composes effects to run in slice order, stopping at the first failure.
func OfFallible0(effects ...FallibleEffect0) FallibleEffect0 {
	return core.Of[FallibleEffect0]("effects", effects, func() error { return nil }, joinFallible0)
}
