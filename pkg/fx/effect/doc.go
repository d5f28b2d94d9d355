// Package effect provides side-effecting behavior values taking zero to four
// inputs, in a non-failing (EffectN) and a fallible (FallibleEffectN) form.
//
// Composition never mutates an existing value and is validated eagerly: a nil
// operand panics with *fx.ValidationError at the composing call, before any
// composite exists. Use fx.Catch to turn such a panic back into an error.
//
// Key operations:
// - Then/Before: run two effects with the same inputs, in order or reversed
// - OfN/OfFallibleN: compose a list; empty is a no-op, one entry is returned as is
// - OnEx: on failure, run a fallible recovery with the original inputs
// - Recover: on failure, run a non-failing recovery; the composite cannot fail
// - HandleEx: route a failure to a sink; IgnoreEx: drop it
// - Apply: choose one of the above through a Policy value
// - Fallible: view an Effect as a FallibleEffect that never fails
//
// Fallible chains are fail-fast: once a step fails, later steps do not run
// and the failure reaches the caller unless a handler intercepts it.
package effect
