package core

import "github.com/ib-77/sidefx/pkg/fx"

type policyKind uint8

const (
	propagate policyKind = iota
	handle
	ignore
)

// Policy selects how the failure of a step reaches its caller. The zero
// value propagates.
type Policy struct {
	kind policyKind
	sink func(error)
}

// Propagate leaves failures visible to the caller.
func Propagate() Policy {
	return Policy{kind: propagate}
}

// Handle routes failures to sink and hides them from the caller.
func Handle(sink func(error)) Policy {
	return Policy{kind: handle, sink: sink}
}

// Ignore drops failures silently.
func Ignore() Policy {
	return Policy{kind: ignore}
}

// Propagates reports whether p leaves failures visible to the caller.
func (p Policy) Propagates() bool {
	return p.kind == propagate
}

func (p Policy) String() string {
	switch p.kind {
	case handle:
		return "handle"
	case ignore:
		return "ignore"
	default:
		return "propagate"
	}
}

// Validate rejects a Handle policy built without a sink.
func (p Policy) Validate() error {
	if p.kind == handle {
		return fx.RequireNotNil("sink", p.sink)
	}
	return nil
}

// Apply returns s governed by p. Under Propagate s itself is returned; the
// other policies yield a step that never reports a failure.
func Apply[A, R any](s Step[A, R], p Policy) Step[A, R] {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	switch p.kind {
	case handle:
		return Lift(HandleEx(s, p.sink))
	case ignore:
		return Lift(IgnoreEx(s))
	default:
		return s
	}
}
