package core

import "github.com/ib-77/sidefx/pkg/fx"

// Of validates fs eagerly and composes it: no entries yields identity, a
// single entry is returned as is, more are handed to join.
func Of[F any](param string, fs []F, identity F, join func([]F) F) F {
	fx.MustEntriesNotBeNil(param, fs)

	switch len(fs) {
	case 0:
		return identity
	case 1:
		return fs[0]
	default:
		return join(fs)
	}
}

// Sequence runs steps in order with the same input and stops at the first
// failure, which is returned unchanged.
func Sequence[A any](steps []Step[A, Unit]) Step[A, Unit] {
	switch len(steps) {
	case 0:
		return func(A) (Unit, error) { return Unit{}, nil }
	case 1:
		return steps[0]
	}

	owned := make([]Step[A, Unit], len(steps))
	copy(owned, steps)

	return func(a A) (Unit, error) {
		for _, s := range owned {
			if _, err := s(a); err != nil {
				return Unit{}, err
			}
		}
		return Unit{}, nil
	}
}

// SequenceTotal runs every step in order with the same input.
func SequenceTotal[A any](steps []Total[A, Unit]) Total[A, Unit] {
	switch len(steps) {
	case 0:
		return func(A) Unit { return Unit{} }
	case 1:
		return steps[0]
	}

	owned := make([]Total[A, Unit], len(steps))
	copy(owned, steps)

	return func(a A) Unit {
		for _, s := range owned {
			s(a)
		}
		return Unit{}
	}
}

// OnEx runs s and, if it fails, runs recovery with the original input and
// returns recovery's outcome instead.
func OnEx[A, R any](s, recovery Step[A, R]) Step[A, R] {
	return func(a A) (R, error) {
		r, err := s(a)
		if err == nil {
			return r, nil
		}
		return recovery(a)
	}
}

// Recover is OnEx with a recovery that cannot fail, so the composite
// cannot fail either.
func Recover[A, R any](s Step[A, R], recovery Total[A, R]) Total[A, R] {
	return func(a A) R {
		r, err := s(a)
		if err == nil {
			return r
		}
		return recovery(a)
	}
}

// HandleEx routes a failure of s to sink exactly once and yields the zero R.
func HandleEx[A, R any](s Step[A, R], sink func(error)) Total[A, R] {
	return func(a A) R {
		r, err := s(a)
		if err != nil {
			sink(err)
			var zero R
			return zero
		}
		return r
	}
}

// IgnoreEx discards any failure of s and yields the zero R in its place.
func IgnoreEx[A, R any](s Step[A, R]) Total[A, R] {
	return func(a A) R {
		r, err := s(a)
		if err != nil {
			var zero R
			return zero
		}
		return r
	}
}
