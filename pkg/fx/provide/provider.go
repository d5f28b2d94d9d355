package provide

import (
	"github.com/ib-77/sidefx/pkg/fx"
	"github.com/ib-77/sidefx/pkg/fx/core"
)

// Provider produces a T and cannot fail.
type Provider[T any] func() T

// FallibleProvider produces a T or a failure.
type FallibleProvider[T any] func() (T, error)

// Constant returns a provider that always yields v.
func Constant[T any](v T) Provider[T] {
	return func() T {
		return v
	}
}

// FromResult returns a provider that replays r on every call.
func FromResult[T any](r fx.Result[T]) FallibleProvider[T] {
	return func() (T, error) {
		return r.Get()
	}
}

func (p Provider[T]) Get() T {
	return p()
}

// Fallible views p as a provider that never fails.
func (p Provider[T]) Fallible() FallibleProvider[T] {
	fx.MustNotBeNil("provider", p)
	return fallible(core.Lift(p.total()))
}

func (p Provider[T]) total() core.Total[core.Unit, T] {
	return func(core.Unit) T {
		return p()
	}
}

func (p FallibleProvider[T]) TryGet() (T, error) {
	return p()
}

// Outcome performs one attempt and captures it as a Result.
func (p FallibleProvider[T]) Outcome() fx.Result[T] {
	v, err := p()
	return fx.ResultOf(v, err)
}

// OnEx returns a provider that asks recovery when p fails.
func (p FallibleProvider[T]) OnEx(recovery FallibleProvider[T]) FallibleProvider[T] {
	fx.MustNotBeNil("provider", p)
	fx.MustNotBeNil("recovery", recovery)
	return fallible(core.OnEx(p.step(), recovery.step()))
}

// Recover returns a provider that asks recovery when p fails.
func (p FallibleProvider[T]) Recover(recovery Provider[T]) Provider[T] {
	fx.MustNotBeNil("provider", p)
	fx.MustNotBeNil("recovery", recovery)
	return provider(core.Recover(p.step(), recovery.total()))
}

// OrElse returns a provider yielding fallback whenever p fails.
func (p FallibleProvider[T]) OrElse(fallback T) Provider[T] {
	return p.Recover(Constant(fallback))
}

// HandleEx passes a failure to sink exactly once and yields the zero T.
func (p FallibleProvider[T]) HandleEx(sink func(error)) Provider[T] {
	fx.MustNotBeNil("provider", p)
	fx.MustNotBeNil("sink", sink)
	return provider(core.HandleEx(p.step(), sink))
}

// IgnoreEx drops a failure and yields the zero T.
func (p FallibleProvider[T]) IgnoreEx() Provider[T] {
	fx.MustNotBeNil("provider", p)
	return provider(core.IgnoreEx(p.step()))
}

func (p FallibleProvider[T]) Apply(policy core.Policy) FallibleProvider[T] {
	fx.MustNotBeNil("provider", p)
	if policy.Propagates() {
		return p
	}
	return fallible(core.Apply(p.step(), policy))
}

func (p FallibleProvider[T]) step() core.Step[core.Unit, T] {
	return func(core.Unit) (T, error) {
		return p()
	}
}

func provider[T any](t core.Total[core.Unit, T]) Provider[T] {
	return func() T {
		return t(core.Unit{})
	}
}

func fallible[T any](s core.Step[core.Unit, T]) FallibleProvider[T] {
	return func() (T, error) {
		return s(core.Unit{})
	}
}
